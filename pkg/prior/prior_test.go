package prior

import (
	"testing"

	"github.com/msartori/causalgo/pkg/errors"
)

func TestNewForbiddenRequired(t *testing.T) {
	k, err := NewForbiddenRequired(
		[]string{"c", "a", "b"},
		[][2]string{{"b", "a"}},
		[][2]string{{"a", "b"}},
	)
	if err != nil {
		t.Fatalf("NewForbiddenRequired() error = %v", err)
	}

	// Sorted labels: a=0, b=1, c=2.
	if !k.HasForbidden(1, 0) {
		t.Error("HasForbidden(b, a) = false, want true")
	}
	if k.HasForbidden(0, 1) {
		t.Error("HasForbidden(a, b) = true, want false (direction-sensitive)")
	}
	if !k.HasRequired(0, 1) {
		t.Error("HasRequired(a, b) = false, want true")
	}
	if got := k.Required(); len(got) != 1 || got[0] != (Edge{From: 0, To: 1}) {
		t.Errorf("Required() = %v, want [{0 1}]", got)
	}
	if got := k.Forbidden(); len(got) != 1 || got[0] != (Edge{From: 1, To: 0}) {
		t.Errorf("Forbidden() = %v, want [{1 0}]", got)
	}
}

func TestNewForbiddenRequired_Errors(t *testing.T) {
	labels := []string{"a", "b"}

	tests := []struct {
		name      string
		forbidden [][2]string
		required  [][2]string
		code      errors.Code
	}{
		{"UnknownForbidden", [][2]string{{"a", "z"}}, nil, errors.ErrCodeUnknownLabel},
		{"UnknownRequired", nil, [][2]string{{"z", "b"}}, errors.ErrCodeUnknownLabel},
		{"SelfEdge", [][2]string{{"a", "a"}}, nil, errors.ErrCodeInvalidInput},
		{"Conflict", [][2]string{{"a", "b"}}, [][2]string{{"a", "b"}}, errors.ErrCodePriorConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewForbiddenRequired(labels, tt.forbidden, tt.required)
			if err == nil {
				t.Fatal("NewForbiddenRequired() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestNewForbiddenRequired_Deduplicates(t *testing.T) {
	k, err := NewForbiddenRequired(
		[]string{"a", "b"},
		[][2]string{{"a", "b"}, {"a", "b"}},
		nil,
	)
	if err != nil {
		t.Fatalf("NewForbiddenRequired() error = %v", err)
	}
	if len(k.Forbidden()) != 1 {
		t.Errorf("Forbidden() has %d edges, want 1", len(k.Forbidden()))
	}
}
