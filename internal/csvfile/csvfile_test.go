package csvfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
)

func TestWriteExactOutput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "plain",
			rows: [][]string{{"ID", "Name"}, {"1", "Alice"}, {"2", "Bob"}},
			want: "ID,Name\n1,Alice\n2,Bob\n",
		},
		{
			name: "comma quoted",
			rows: [][]string{{"1", "Doe, Jane"}},
			want: "1,\"Doe, Jane\"\n",
		},
		{
			name: "quote escaped",
			rows: [][]string{{"say \"hi\""}},
			want: "\"say \"\"hi\"\"\"\n",
		},
		{
			name: "newline quoted",
			rows: [][]string{{"a\nb", "c"}},
			want: "\"a\nb\",c\n",
		},
		{
			name: "empty",
			rows: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.rows); err != nil {
				t.Fatalf("write: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWritePropagatesError(t *testing.T) {
	err := Write(errWriter{}, [][]string{{"a", "b"}})
	if err == nil {
		t.Fatal("expected error from failing writer")
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	fsys := zfilesystem.NewMemFS()
	rows := [][]string{
		{"ID", "Name", "Note"},
		{"1", "Alice", "likes, commas"},
		{"2", "Bob", "multi\nline"},
		{"3", "Carol", "\"quoted\""},
	}

	if err := WriteFile(fsys, "test.csv", rows); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := ReadFile(fsys, "test.csv")
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !slices.EqualFunc(got, rows, slices.Equal[[]string]) {
		t.Errorf("round trip = %q, want %q", got, rows)
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	fsys := zfilesystem.NewMemFS()

	if err := WriteFile(fsys, "out.csv", [][]string{{"a"}, {"1"}, {"2"}, {"3"}}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := WriteFile(fsys, "out.csv", [][]string{{"b"}}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := fsys.ReadFile("out.csv")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "b\n" {
		t.Errorf("expected overwritten content, got %q", data)
	}
}

func TestWriteFileOS(t *testing.T) {
	dir := t.TempDir()
	fsys := zfilesystem.NewOSFileSystem(dir)

	if err := WriteFile(fsys, "test.csv", [][]string{{"ID", "Name"}, {"1", "Alice"}, {"2", "Bob"}}); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "test.csv"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "ID,Name\n1,Alice\n2,Bob\n" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestReadFileMissing(t *testing.T) {
	fsys := zfilesystem.NewMemFS()
	if _, err := ReadFile(fsys, "nope.csv"); err == nil {
		t.Fatal("expected error reading missing file")
	}
}

func TestWriteFileMissingParent(t *testing.T) {
	rows := [][]string{{"ID"}, {"1"}}

	tests := []struct {
		name string
		fsys zfilesystem.ReadWriteFileFS
	}{
		{"os", zfilesystem.NewOSFileSystem(t.TempDir())},
		{"mem", zfilesystem.NewMemFS()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := WriteFile(tt.fsys, "missing/x.csv", rows); err == nil {
				t.Fatal("expected error writing under a missing directory")
			}
		})
	}
}

func TestWriteFileExistingParent(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "out"), 0o755); err != nil {
		t.Fatal(err)
	}
	fsys := zfilesystem.NewOSFileSystem(dir)

	if err := WriteFile(fsys, "out/x.csv", [][]string{{"ID"}, {"1"}}); err != nil {
		t.Fatalf("write file: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "out", "x.csv"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "ID\n1\n" {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestWriteFileParentIsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plain"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := WriteFile(zfilesystem.NewOSFileSystem(dir), "plain/x.csv", [][]string{{"ID"}})
	if err == nil {
		t.Fatal("expected error when the parent is a regular file")
	}
}
