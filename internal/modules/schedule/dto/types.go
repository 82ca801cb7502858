package dto

import "time"

type SlotOutput struct {
	Key     string
	Hour    int
	Label   string
	Text    string
	HasText bool
	Phase   string
}

type BoardOutput struct {
	Heading     string
	Day         time.Time
	CurrentHour int
	LastUpdated time.Time
	Slots       []SlotOutput
}

type SaveInput struct {
	SlotKey string
	Text    string
}

type SaveOutput struct {
	SlotKey     string
	Hour        int
	Change      string
	LastUpdated time.Time
}

type EntryOutput struct {
	SlotKey string
	Hour    int
	Label   string
	Text    string
	Found   bool
}
