package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const modulesImport = "dayplanner/internal/modules/"

type importVisitor func(path string, imports []string)

func walkImports(t *testing.T, root string, visit importVisitor) {
	t.Helper()
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		imports := make([]string, 0, len(node.Imports))
		for _, imp := range node.Imports {
			imports = append(imports, strings.Trim(imp.Path.Value, `"`))
		}
		visit(filepath.ToSlash(path), imports)
		return nil
	})
	if err != nil {
		t.Fatalf("walk %s: %v", root, err)
	}
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "modules"), func(path string, imports []string) {
		module := moduleName(path)
		layer := detectLayer(path)
		if module == "" || layer == "" {
			return
		}
		for _, importPath := range imports {
			if !strings.Contains(importPath, modulesImport) {
				continue
			}
			if violatesLayerRule(module, layer, importPath) {
				t.Errorf("forbidden import in %s (%s): %s", path, layer, importPath)
			}
		}
	})
}

// Platform packages sit below every module; the UI talks to modules only through dto.
func TestPlatformAndUIDependencyDirection(t *testing.T) {
	t.Parallel()
	walkImports(t, filepath.Join("..", "platform"), func(path string, imports []string) {
		for _, importPath := range imports {
			if strings.Contains(importPath, modulesImport) || strings.Contains(importPath, "dayplanner/internal/ui") {
				t.Errorf("platform package %s imports %s", path, importPath)
			}
		}
	})
	walkImports(t, filepath.Join("..", "ui"), func(path string, imports []string) {
		for _, importPath := range imports {
			if strings.Contains(importPath, modulesImport) && !isDTO(importPath) {
				t.Errorf("ui package %s imports %s", path, importPath)
			}
		}
	})
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func isPortIn(path string) bool {
	return strings.Contains(path, "/port/in/") || strings.HasSuffix(path, "/port/in")
}

func isDTO(path string) bool {
	return strings.Contains(path, "/dto/") || strings.HasSuffix(path, "/dto")
}

func violatesLayerRule(module, layer, importPath string) bool {
	sameModule := strings.Contains(importPath, "/internal/modules/"+module+"/")
	if !sameModule {
		if strings.Contains(importPath, "/service") || strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase") {
			return true
		}
		if isPortIn(importPath) || isDTO(importPath) {
			return false
		}
	}

	switch layer {
	case "adapter/in":
		return !isPortIn(importPath) && !isDTO(importPath)
	case "usecase":
		return strings.Contains(importPath, "/adapter/")
	case "service":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase")
	case "domain", "dto", "port/in", "port/out":
		return strings.Contains(importPath, "/adapter/") || strings.Contains(importPath, "/usecase") || strings.Contains(importPath, "/service")
	default:
		return false
	}
}

func TestViolatesLayerRule(t *testing.T) {
	t.Parallel()
	cases := []struct {
		layer, importPath string
		want              bool
	}{
		{"adapter/in", modulesImport + "schedule/port/in", false},
		{"adapter/in", modulesImport + "schedule/dto", false},
		{"adapter/in", modulesImport + "schedule/service", true},
		{"usecase", modulesImport + "schedule/service", false},
		{"usecase", modulesImport + "schedule/adapter/out", true},
		{"service", modulesImport + "schedule/usecase", true},
		{"service", modulesImport + "schedule/port/out", false},
		{"domain", modulesImport + "schedule/service", true},
		{"port/out", modulesImport + "schedule/domain", false},
	}
	for _, tc := range cases {
		if got := violatesLayerRule("schedule", tc.layer, tc.importPath); got != tc.want {
			t.Errorf("%s importing %s: got %v want %v", tc.layer, tc.importPath, got, tc.want)
		}
	}
}
