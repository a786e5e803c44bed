// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package validation

import (
	"strings"
	"sync"
	"testing"
)

type decadeRequest struct {
	Decade int `validate:"required,decade"`
	Limit  int `validate:"min=1,max=500"`
}

type moodRequest struct {
	Moods []string `validate:"required,min=1,max=5"`
	Sort  string   `validate:"omitempty,oneof=curated influence gems new"`
}

func TestGetValidatorSingleton(t *testing.T) {
	t.Parallel()

	a := GetValidator()
	b := GetValidator()
	if a != b {
		t.Error("GetValidator returned different instances")
	}
}

func TestGetValidatorConcurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if GetValidator() == nil {
				t.Error("GetValidator returned nil")
			}
		}()
	}
	wg.Wait()
}

func TestValidateStructDecade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     decadeRequest
		wantErr bool
		wantMsg string
	}{
		{
			name: "valid decade",
			req:  decadeRequest{Decade: 1960, Limit: 10},
		},
		{
			name:    "non-multiple of ten",
			req:     decadeRequest{Decade: 1965, Limit: 10},
			wantErr: true,
			wantMsg: "Decade must be a decade",
		},
		{
			name:    "negative decade",
			req:     decadeRequest{Decade: -10, Limit: 10},
			wantErr: true,
		},
		{
			name:    "missing decade",
			req:     decadeRequest{Limit: 10},
			wantErr: true,
			wantMsg: "Decade is required",
		},
		{
			name:    "limit too large",
			req:     decadeRequest{Decade: 1990, Limit: 501},
			wantErr: true,
			wantMsg: "Limit must be at most 500",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateStructMoods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     moodRequest
		wantErr bool
		wantMsg string
	}{
		{
			name: "valid",
			req:  moodRequest{Moods: []string{"melancholic"}, Sort: "gems"},
		},
		{
			name: "empty sort allowed",
			req:  moodRequest{Moods: []string{"dreamlike", "bleak"}},
		},
		{
			name:    "no moods",
			req:     moodRequest{Moods: []string{}},
			wantErr: true,
		},
		{
			name:    "too many moods",
			req:     moodRequest{Moods: []string{"a", "b", "c", "d", "e", "f"}},
			wantErr: true,
			wantMsg: "Moods must have at most 5 elements",
		},
		{
			name:    "unknown sort",
			req:     moodRequest{Moods: []string{"austere"}, Sort: "random"},
			wantErr: true,
			wantMsg: "Sort must be one of",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationErrorAggregation(t *testing.T) {
	t.Parallel()

	req := decadeRequest{Decade: 1965, Limit: 0}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if got := len(err.Errors()); got != 2 {
		t.Fatalf("Errors() length = %d, want 2", got)
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("combined message %q should join failures with ';'", err.Error())
	}

	fe := err.Errors()[0]
	if fe.Field() != "Decade" || fe.Tag() != "decade" {
		t.Errorf("first error = %s/%s, want Decade/decade", fe.Field(), fe.Tag())
	}
	if v, ok := fe.Value().(int); !ok || v != 1965 {
		t.Errorf("Value() = %v, want 1965", fe.Value())
	}
}
