package entity

import (
	"strings"
	"testing"
)

func TestTask_Validate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
		field   string
	}{
		{
			name: "valid task",
			task: Task{Title: "Buy groceries", Notes: "milk, eggs"},
		},
		{
			name:    "empty title",
			task:    Task{Title: ""},
			wantErr: true,
			field:   "title",
		},
		{
			name:    "whitespace-only title",
			task:    Task{Title: "   "},
			wantErr: true,
			field:   "title",
		},
		{
			name:    "title too long",
			task:    Task{Title: strings.Repeat("a", maxTitleLength+1)},
			wantErr: true,
			field:   "title",
		},
		{
			name:    "notes too long",
			task:    Task{Title: "ok", Notes: strings.Repeat("b", maxNotesLength+1)},
			wantErr: true,
			field:   "notes",
		},
		{
			name: "title at limit",
			task: Task{Title: strings.Repeat("a", maxTitleLength)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ve, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if ve.Field != tt.field {
					t.Errorf("Field = %q, want %q", ve.Field, tt.field)
				}
			}
		})
	}
}

func TestMultibyteLengthCountsRunes(t *testing.T) {
	// 200 multibyte runes is exactly at the limit even though the byte
	// length is three times larger.
	title := strings.Repeat("あ", maxTitleLength)
	task := Task{Title: title}
	if err := task.Validate(); err != nil {
		t.Fatalf("Validate() error = %v, want nil", err)
	}
}
