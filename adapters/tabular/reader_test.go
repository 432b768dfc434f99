package tabular

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"datadash/domain/core"
	"datadash/domain/tabular"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}
	return path
}

func TestRead_CSV(t *testing.T) {
	reader := NewDataReader()
	path := writeTempCSV(t, "age,city\n30,Oslo\n41,Lima\n,Pune\n")

	table, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if table.RowCount != 3 {
		t.Errorf("Expected 3 data rows, got %d", table.RowCount)
	}
	if len(table.Columns) != 2 {
		t.Fatalf("Expected 2 columns, got %d", len(table.Columns))
	}

	age := table.Columns[0]
	if age.Name != "age" || age.Kind != tabular.KindNumeric {
		t.Errorf("age column misread: %+v", age)
	}
	if age.MissingCount() != 1 {
		t.Errorf("Expected 1 missing age, got %d", age.MissingCount())
	}

	city := table.Columns[1]
	if city.Kind != tabular.KindCategorical {
		t.Errorf("city should be categorical, got %s", city.Kind)
	}
}

func TestRead_RaggedRowsPadWithNulls(t *testing.T) {
	reader := NewDataReader()
	path := writeTempCSV(t, "a,b,c\n1,2,3\n4,5\n")

	table, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	c := table.Columns[2]
	if c.MissingCount() != 1 {
		t.Errorf("Short row should leave a null in column c, got %d missing", c.MissingCount())
	}
}

func TestRead_MissingFileIsUnreadable(t *testing.T) {
	reader := NewDataReader()
	_, err := reader.Read(filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, core.ErrUnreadableFile) {
		t.Fatalf("Expected ErrUnreadableFile, got %v", err)
	}
}

func TestRead_MalformedCSVIsUnreadable(t *testing.T) {
	reader := NewDataReader()
	path := writeTempCSV(t, "a,b\n\"unterminated,1\n")
	_, err := reader.Read(path)
	if !errors.Is(err, core.ErrUnreadableFile) {
		t.Fatalf("Expected ErrUnreadableFile, got %v", err)
	}
}

func TestRead_CorruptWorkbookIsUnreadable(t *testing.T) {
	reader := NewDataReader()
	path := filepath.Join(t.TempDir(), "data.xlsx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	_, err := reader.Read(path)
	if !errors.Is(err, core.ErrUnreadableFile) {
		t.Fatalf("Expected ErrUnreadableFile, got %v", err)
	}
}

func TestRead_HeaderOnlyFile(t *testing.T) {
	reader := NewDataReader()
	path := writeTempCSV(t, "a,b\n")

	table, err := reader.Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if table.RowCount != 0 {
		t.Errorf("Expected 0 data rows, got %d", table.RowCount)
	}
	if len(table.Columns) != 2 {
		t.Errorf("Expected 2 columns, got %d", len(table.Columns))
	}
}
