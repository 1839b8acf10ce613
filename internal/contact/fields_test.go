package contact

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestName_NormalizesWhitespace(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Rachel   Walker", "Rachel Walker"},
		{"  Rachel\tWalker\n", "Rachel Walker"},
		{"Rachel Walker", "Rachel Walker"},
		{"O'Brien-Smith Jr.", "O'Brien-Smith Jr."},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NewName(tt.raw)
			if err != nil {
				t.Fatalf("NewName(%q) error = %v", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("NewName(%q) = %q, want %q", tt.raw, got, tt.want)
			}

			// Re-deriving from the normalized output is a no-op.
			again := MustName(got.String())
			if again != got {
				t.Errorf("re-parse of %q = %q, want equal value", got, again)
			}
		})
	}
}

func TestName_RejectsBlank(t *testing.T) {
	for _, raw := range []string{"", " ", "\t\n"} {
		_, err := NewName(raw)
		if !errors.Is(err, ErrInvalidField) {
			t.Errorf("NewName(%q) error = %v, want ErrInvalidField", raw, err)
		}
		if err != nil && err.Error() != NameConstraints {
			t.Errorf("NewName(%q) message = %q, want %q", raw, err.Error(), NameConstraints)
		}
	}
}

func TestPhone_DigitBoundaries(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		want  string
	}{
		{"123", false, ""},
		{"1234", true, "1234"},
		{"12345678901234567", true, "12345678901234567"},
		{"123456789012345678", false, ""},
		{"9123 4567", true, "91234567"},
		{"12 3", false, ""},
		{"   ", false, ""},
		{"phone", false, ""},
		{"9011p041", false, ""},
		{"+6591234567", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := IsValidPhone(tt.raw); got != tt.valid {
				t.Fatalf("IsValidPhone(%q) = %v, want %v", tt.raw, got, tt.valid)
			}
			p, err := NewPhone(tt.raw)
			if !tt.valid {
				if err == nil || err.Error() != PhoneConstraints {
					t.Errorf("NewPhone(%q) error = %v, want constraint message", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPhone(%q) error = %v", tt.raw, err)
			}
			if p.String() != tt.want {
				t.Errorf("NewPhone(%q) = %q, want %q", tt.raw, p, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"", true},
		{" ", false},
		{"@example.com", false},
		{"peterjack@", false},
		{"peterjackexample.com", false},
		{"peterjack@-example.com", false},
		{"peterjack@example-.com", false},
		{"peterjack@example_label.com", false},
		{"peterjack@example.c", false},
		{"peter jack@example.com", false},
		{"-peterjack@example.com", false},
		{"peterjack-@example.com", false},
		{"peter..jack@example.com", false},
		{"peterjack@example..com", false},
		{"peterjack@.example.com", false},
		{"peterjack@example.com.", false},
		{"peter@jack@example.com", false},
		{"a@bc", true},
		{"123@145", true},
		{"PeterJack_1190@example.com", true},
		{"a1+be.d@example1.com", true},
		{"peter--jack@example.com", true},
		{"peter++jack@example.com", true},
		{"peter__jack@example.com", true},
		{"peter_jack@very-very-very-long-example.com", true},
		{"if.you.dream.it_you.can.do.it@example.com", true},
		{"e1@e2.e3-e4.com", true},
		{strings.Repeat("a", 88) + "@example.com", true},
		{strings.Repeat("a", 89) + "@example.com", false},
	}
	for _, tt := range tests {
		if got := IsValidEmail(tt.raw); got != tt.valid {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.raw, got, tt.valid)
		}
	}
}

func TestAddress(t *testing.T) {
	valid := []string{
		"", "1", "A", "123 Main Street", "Blk 456, Den Road, #01-355",
		"A123 Smith St.", "Building A-12, Level 3", "123/456 Main St",
	}
	for _, raw := range valid {
		if !IsValidAddress(raw) {
			t.Errorf("IsValidAddress(%q) = false, want true", raw)
		}
	}
	invalid := []string{
		" ", " 123 Main St", "#12-34", "-Main St", ",123 Street",
		"123 Main St*", "123@Main St", "123 (Main) St", "123 Main St;",
	}
	for _, raw := range invalid {
		if IsValidAddress(raw) {
			t.Errorf("IsValidAddress(%q) = true, want false", raw)
		}
		if _, err := NewAddress(raw); err == nil || err.Error() != AddressConstraints {
			t.Errorf("NewAddress(%q) error = %v, want constraint message", raw, err)
		}
	}

	// Given an address with a run of spaces
	a := MustAddress("Blk 30   Geylang Street 29")
	// Then the run collapses and re-parsing is stable
	if a.String() != "Blk 30 Geylang Street 29" {
		t.Errorf("address = %q, want collapsed spaces", a)
	}
	if MustAddress(a.String()) != a {
		t.Error("re-parsing normalized address should give an equal value")
	}
}

func TestOccupation(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{" Engineer ", "Engineer"},
		{"Software Engineer 2", "Software Engineer 2"},
		{"C++ dev / ops", "C++ dev / ops"},
	}
	for _, tt := range tests {
		got, err := NewOccupation(tt.raw)
		if err != nil {
			t.Fatalf("NewOccupation(%q) error = %v", tt.raw, err)
		}
		if got.String() != tt.want {
			t.Errorf("NewOccupation(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
	if IsValidOccupation(" Engineer") {
		t.Error("IsValidOccupation should reject leading whitespace")
	}
}

func TestAge(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
		years int
	}{
		{"", true, 0},
		{"9", false, 0},
		{"10", true, 10},
		{"120", true, 120},
		{"121", false, 0},
		{"025", true, 25},
		{"0025", false, 0},
		{"-5", false, 0},
		{"abc", false, 0},
		{"1.5", false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			a, err := NewAge(tt.raw)
			if !tt.valid {
				if err == nil || err.Error() != AgeConstraints {
					t.Errorf("NewAge(%q) error = %v, want %q", tt.raw, err, AgeConstraints)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAge(%q) error = %v", tt.raw, err)
			}
			if a.Years() != tt.years {
				t.Errorf("NewAge(%q).Years() = %d, want %d", tt.raw, a.Years(), tt.years)
			}
		})
	}

	if MustAge("025") != MustAge("25") {
		t.Error(`Age("025") should equal Age("25")`)
	}
	if got := MustAge("025").String(); got != "25" {
		t.Errorf(`Age("025").String() = %q, want "25"`, got)
	}
}

func TestPriority(t *testing.T) {
	for raw, want := range map[string]Priority{
		"none": PriorityNone, "Low": PriorityLow, "MEDIUM": PriorityMedium, " high ": PriorityHigh,
	} {
		got, err := ParsePriority(raw)
		if err != nil {
			t.Fatalf("ParsePriority(%q) error = %v", raw, err)
		}
		if got != want {
			t.Errorf("ParsePriority(%q) = %v, want %v", raw, got, want)
		}
	}
	for _, raw := range []string{"", "urgent", "1"} {
		if _, err := ParsePriority(raw); err == nil || err.Error() != PriorityConstraints {
			t.Errorf("ParsePriority(%q) error = %v, want constraint message", raw, err)
		}
	}
	if PriorityHigh.String() != "HIGH" {
		t.Errorf("PriorityHigh.String() = %q, want HIGH", PriorityHigh.String())
	}
}

func TestIncomeBracket(t *testing.T) {
	got, err := ParseIncomeBracket(" Middle ")
	if err != nil {
		t.Fatalf("ParseIncomeBracket error = %v", err)
	}
	if got != IncomeMiddle || got.String() != "MIDDLE" || got.Display() != "Middle Income" {
		t.Errorf("ParseIncomeBracket(\" Middle \") = %v/%q, want MIDDLE/Middle Income", got, got.Display())
	}
	for _, raw := range []string{"", "rich", "Low Income"} {
		if _, err := ParseIncomeBracket(raw); err == nil || err.Error() != IncomeBracketConstraints {
			t.Errorf("ParseIncomeBracket(%q) error = %v, want constraint message", raw, err)
		}
	}
}

func TestLastContactedDate(t *testing.T) {
	// Given "today" is pinned to 2025-10-01
	orig := today
	today = func() time.Time { return time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { today = orig })

	tests := []struct {
		raw   string
		valid bool
	}{
		{"", true},
		{"2025-10-01", true},
		{"2024-02-29", true},
		{"2025-10-02", false},
		{"2023-02-29", false},
		{"2025-13-01", false},
		{"2025-9-20", false},
		{"20-09-2025", false},
		{"yesterday", false},
	}
	for _, tt := range tests {
		if got := IsValidLastContactedDate(tt.raw); got != tt.valid {
			t.Errorf("IsValidLastContactedDate(%q) = %v, want %v", tt.raw, got, tt.valid)
		}
	}

	d := MustLastContactedDate("2025-09-20")
	if d.String() != "2025-09-20" || d.Display() != "2025-09-20" {
		t.Errorf("date = %q/%q, want 2025-09-20", d.String(), d.Display())
	}
	var unset LastContactedDate
	if unset.String() != "" || unset.Display() != "N/A" {
		t.Errorf("unset date = %q/%q, want empty/N/A", unset.String(), unset.Display())
	}
}

func TestTag(t *testing.T) {
	if _, err := NewTag(strings.Repeat("x", 30)); err != nil {
		t.Errorf("30-char tag error = %v", err)
	}
	for _, raw := range []string{"", "  ", strings.Repeat("x", 31)} {
		if _, err := NewTag(raw); err == nil || err.Error() != TagConstraints {
			t.Errorf("NewTag(%q) error = %v, want constraint message", raw, err)
		}
	}

	// Any spelling of "do not call" becomes the DNC variant.
	for _, raw := range []string{"Do Not Call", "do not call", "DO  NOT\tCALL"} {
		tag := MustTag(raw)
		if !tag.IsDNC() || tag != DNCTag() {
			t.Errorf("NewTag(%q) = %+v, want DNC tag", raw, tag)
		}
	}
	if MustTag("follow up").IsDNC() {
		t.Error("plain tag should not be DNC")
	}
}

func TestTagSet_DedupAndEqual(t *testing.T) {
	a := NewTagSet(MustTag("b"), MustTag("a"), MustTag("b"))
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	b := NewTagSet(MustTag("a"), MustTag("b"))
	if !a.Equal(b) {
		t.Error("sets with the same tags in a different order should be equal")
	}
	if a.HasDNC() {
		t.Error("HasDNC() = true, want false")
	}
	if !NewTagSet(DNCTag()).HasDNC() {
		t.Error("HasDNC() = false, want true")
	}
}

func TestMust_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustPhone with bad input should panic")
		}
	}()
	MustPhone("12")
}
