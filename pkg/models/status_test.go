package models

import (
	"encoding/json"
	"errors"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

func TestParseStatusSelector_AllRanks(t *testing.T) {
	for i, want := range AllStatuses() {
		got, err := ParseStatusSelector(strconv.Itoa(i + 1))
		if err != nil {
			t.Fatalf("selector %d: unexpected error: %v", i+1, err)
		}
		if got != want {
			t.Errorf("selector %d = %v, want %v", i+1, got, want)
		}
	}
}

func TestParseStatusSelector_Invalid(t *testing.T) {
	for _, in := range []string{"", "0", "8", "cats", "11", " 1", "1 ", "-1"} {
		if _, err := ParseStatusSelector(in); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseStatusSelector(%q) err = %v, want ErrInvalidStatus", in, err)
		}
	}
}

func TestParseStatusWire_Ranks(t *testing.T) {
	want := map[string]int{
		"DRAFT":       1,
		"READY":       2,
		"TO_DO":       3,
		"IN_PROGRESS": 4,
		"REVIEW":      5,
		"COMPLETE":    6,
		"ARCHIVE":     7,
	}
	for token, rank := range want {
		st, err := ParseStatusWire(token)
		if err != nil {
			t.Fatalf("ParseStatusWire(%q): %v", token, err)
		}
		if st.WireValue() != rank {
			t.Errorf("%s rank = %d, want %d", token, st.WireValue(), rank)
		}
		if st.Wire() != token {
			t.Errorf("Wire() = %q, want %q", st.Wire(), token)
		}
	}
}

func TestParseStatusWire_CaseSensitive(t *testing.T) {
	for _, in := range []string{"draft", "In_Progress", "In Progress", "", "DONE"} {
		if _, err := ParseStatusWire(in); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseStatusWire(%q) err = %v, want ErrInvalidStatus", in, err)
		}
	}
}

func TestStatus_Display(t *testing.T) {
	if got := StatusInProgress.Display(); got != "In Progress" {
		t.Errorf("Display() = %q", got)
	}
	if got := Status(0).Display(); got != "Unknown" {
		t.Errorf("zero Display() = %q", got)
	}
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(StatusReview)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "5" {
		t.Errorf("marshal = %s, want 5", data)
	}

	cases := map[string]Status{
		`"IN_PROGRESS"`: StatusInProgress,
		`"In Progress"`: StatusInProgress,
		`"TODO"`:        StatusToDo,
		`7`:             StatusArchive,
	}
	for in, want := range cases {
		var got Status
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if got != want {
			t.Errorf("unmarshal %s = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{`"BLOCKED"`, `0`, `8`, `2.5`, `true`, `null`} {
		var got Status
		if err := json.Unmarshal([]byte(in), &got); err == nil {
			t.Errorf("unmarshal %s: expected error, got %v", in, got)
		}
	}

	if _, err := json.Marshal(Status(0)); err == nil {
		t.Error("expected error marshaling zero status")
	}
}

// The selector for rank n always decodes to the status whose wire value is n,
// and the wire token of that status decodes back to it.
func TestProperty_StatusSelectorWireRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rank := rapid.IntRange(1, 7).Draw(rt, "rank")

		st, err := ParseStatusSelector(strconv.Itoa(rank))
		if err != nil {
			rt.Fatalf("selector %d: %v", rank, err)
		}
		if st.WireValue() != rank {
			rt.Fatalf("selector %d decoded to rank %d", rank, st.WireValue())
		}

		back, err := ParseStatusWire(st.Wire())
		if err != nil {
			rt.Fatalf("wire %q: %v", st.Wire(), err)
		}
		if back != st {
			rt.Fatalf("wire round trip %v -> %v", st, back)
		}
	})
}

func TestProperty_StatusSelectorRejectsOthers(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		in := rapid.String().Filter(func(s string) bool {
			return len(s) != 1 || s[0] < '1' || s[0] > '7'
		}).Draw(rt, "input")

		if _, err := ParseStatusSelector(in); !errors.Is(err, ErrInvalidStatus) {
			rt.Fatalf("ParseStatusSelector(%q) err = %v", in, err)
		}
	})
}
