package logfields

import "log/slog"

// Canonical log field names shared across packages.
const (
	KeySlotKey = "slot_key"
	KeyHour    = "hour"
	KeyBackend = "backend"
	KeyPath    = "path"
	KeyDay     = "day"
	KeyReason  = "reason"
	KeyError   = "error"
)

func SlotKey(k string) slog.Attr { return slog.String(KeySlotKey, k) }
func Hour(h int) slog.Attr       { return slog.Int(KeyHour, h) }
func Backend(b string) slog.Attr { return slog.String(KeyBackend, b) }
func Path(p string) slog.Attr    { return slog.String(KeyPath, p) }
func Day(d string) slog.Attr     { return slog.String(KeyDay, d) }
func Reason(r string) slog.Attr  { return slog.String(KeyReason, r) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
