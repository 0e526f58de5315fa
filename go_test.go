package xfloat_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"testing"
)

// The library itself may only pull in these modules. spew and yaml are for
// tests and tooling.
var allowedImports = map[string]bool{
	"github.com/shabbyrobe/go-xfloat/eft": true,
	"golang.org/x/exp/constraints":        true,
	"golang.org/x/sys/cpu":                true,
}

func TestLibraryDeps(t *testing.T) {
	if os.Getenv("XFLOAT_SKIP_DEPS") != "" {
		// Use this to avoid this check if you need to use spew.Dump while debugging:
		t.Skip()
	}

	var bad []string
	for _, dir := range []string{".", "eft"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		if err != nil {
			t.Fatal(err)
		}
		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), file, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatal(err)
			}
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				if err != nil {
					t.Fatal(err)
				}
				first := strings.SplitN(path, "/", 2)[0]
				if strings.Contains(first, ".") && !allowedImports[path] {
					bad = append(bad, file+": "+path)
				}
			}
		}
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		t.Fatal("library imports unexpected modules:\n" + strings.Join(bad, "\n"))
	}
}
