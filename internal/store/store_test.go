package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/juju/errors"

	"github.com/glopal/services/internal/service"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), ".cli", "services.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load() returned %d services, want 0", len(got))
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Errorf("Load created %s", s.Path())
	}
}

func TestReplaceCreatesDirAndRoundTrips(t *testing.T) {
	s := newTestStore(t)
	want := []service.Service{
		{ID: 1, Name: "web", StartCommand: service.Str("docker start web"), StopCommand: service.Str("docker stop web")},
		{ID: 2, Name: "db"},
	}
	if err := s.Replace(want); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	before, _ := os.ReadFile(s.Path())
	if err := s.Replace(got); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	after, _ := os.ReadFile(s.Path())
	if string(before) != string(after) {
		t.Errorf("replace(load()) changed the file:\n%s\n---\n%s", before, after)
	}
}

func TestEncodeWritesNulls(t *testing.T) {
	data, err := Encode([]service.Service{{ID: 1, Name: "web", StartCommand: service.Str("start.sh")}})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := string(data)
	for _, want := range []string{`"start_command": "start.sh"`, `"stop_command": null`, `"restart_command": null`, "\n  {"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded registry missing %q:\n%s", want, out)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []service.Service
	}{
		{"blank", "  \n", []service.Service{}},
		{"empty array", "[]", []service.Service{}},
		{"missing keys are absent", `[{"id":1,"name":"web"}]`, []service.Service{{ID: 1, Name: "web"}}},
		{
			"explicit null",
			`[{"id":1,"name":"web","start_command":"a","stop_command":null,"restart_command":null}]`,
			[]service.Service{{ID: 1, Name: "web", StartCommand: service.Str("a")}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	s := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte(`{"not": "a list"`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load()
	if !errors.Is(err, service.ErrSerialization) {
		t.Errorf("Load() error = %v, want ErrSerialization", err)
	}
}

func TestLoadIOError(t *testing.T) {
	s := newTestStore(t)
	// A directory where the file should be cannot be read as a file.
	if err := os.MkdirAll(s.Path(), 0755); err != nil {
		t.Fatal(err)
	}
	_, err := s.Load()
	if !errors.Is(err, service.ErrIO) {
		t.Errorf("Load() error = %v, want ErrIO", err)
	}
	if err := s.Replace(nil); !errors.Is(err, service.ErrIO) {
		t.Errorf("Replace() error = %v, want ErrIO", err)
	}
}

func TestAppend(t *testing.T) {
	s := newTestStore(t)
	for i, name := range []string{"web", "db"} {
		got, err := s.Append(service.Service{ID: 99, Name: name})
		if err != nil {
			t.Fatalf("Append(%s): %v", name, err)
		}
		if got.ID != i+1 {
			t.Errorf("Append(%s).ID = %d, want %d", name, got.ID, i+1)
		}
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []service.Service{{ID: 1, Name: "web"}, {ID: 2, Name: "db"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Append mismatch (-want +got):\n%s", diff)
	}
}
