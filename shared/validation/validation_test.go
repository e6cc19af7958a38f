package validation

import (
	"strings"
	"testing"

	"github.com/Rich-Wilkyness/social-media-api/shared/models"
)

func TestStructAccount(t *testing.T) {
	tests := []struct {
		name      string
		account   models.Account
		wantTypes []string
	}{
		{name: "valid", account: models.Account{Username: "bob", Password: "1234"}},
		{name: "empty username", account: models.Account{Password: "1234"}, wantTypes: []string{"required"}},
		{name: "short password", account: models.Account{Username: "bob", Password: "123"}, wantTypes: []string{"min"}},
		{name: "both invalid", account: models.Account{}, wantTypes: []string{"required", "min"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.account)
			if len(errs) != len(tt.wantTypes) {
				t.Fatalf("expected %d errors, got %d: %+v", len(tt.wantTypes), len(errs), errs)
			}
			for i, want := range tt.wantTypes {
				if errs[i].Type != want {
					t.Errorf("error %d: expected type %q, got %q", i, want, errs[i].Type)
				}
			}
		})
	}
}

func TestStructMessageText(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "single char", text: "a"},
		{name: "exactly 255", text: strings.Repeat("x", 255)},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: "  \t ", wantErr: true},
		{name: "256 chars", text: strings.Repeat("x", 256), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(models.Message{PostedBy: 1, MessageText: tt.text})
			if (errs != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %+v", tt.wantErr, errs)
			}
		})
	}
}
