package repair

import "testing"

func TestParseEnums(t *testing.T) {
	t.Parallel()

	if got, err := ParseMaintenanceStatus(" in_progress "); err != nil || got != MaintenanceInProgress {
		t.Fatalf("ParseMaintenanceStatus() = %q, %v", got, err)
	}
	if got, err := ParseCategory("hvac"); err != nil || got != CategoryHVAC {
		t.Fatalf("ParseCategory() = %q, %v", got, err)
	}
	if got, err := ParsePledgeStatus("Offered"); err != nil || got != PledgeOffered {
		t.Fatalf("ParsePledgeStatus() = %q, %v", got, err)
	}
	if got, err := ParsePledgeType("LABOR"); err != nil || got != PledgeLabor {
		t.Fatalf("ParsePledgeType() = %q, %v", got, err)
	}
	if got, err := ParseOutcomeStatus("partial_success"); err != nil || got != OutcomePartialSuccess {
		t.Fatalf("ParseOutcomeStatus() = %q, %v", got, err)
	}

	for _, raw := range []string{"", "DONE", "open-ish"} {
		if _, err := ParseMaintenanceStatus(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestMaintenanceStatusCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to MaintenanceStatus
		want     bool
	}{
		{MaintenanceOpen, MaintenanceInProgress, true},
		{MaintenanceOpen, MaintenanceCompleted, true},
		{MaintenanceOpen, MaintenanceCanceled, true},
		{MaintenanceInProgress, MaintenanceOpen, false},
		{MaintenanceInProgress, MaintenanceCompleted, true},
		{MaintenanceInProgress, MaintenanceInProgress, true},
		{MaintenanceCompleted, MaintenanceOpen, false},
		{MaintenanceCompleted, MaintenanceCompleted, true},
		{MaintenanceCanceled, MaintenanceInProgress, false},
		{MaintenanceOpen, MaintenanceStatus("ARCHIVED"), false},
	}
	for _, tc := range tests {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestPledgeStatusCanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from, to PledgeStatus
		want     bool
	}{
		{PledgeOffered, PledgePending, true},
		{PledgePending, PledgeOffered, true},
		{PledgePending, PledgeCompleted, true},
		{PledgeRejected, PledgeOffered, false},
		{PledgeCompleted, PledgeCanceled, false},
		{PledgeCanceled, PledgePending, false},
		{PledgeCanceled, PledgeCanceled, true},
	}
	for _, tc := range tests {
		if got := tc.from.CanTransition(tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestStatusFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    StatusFilter
		pseudo  bool
		matches map[MaintenanceStatus]bool
	}{
		{
			raw:  "",
			want: StatusFilterNone,
			matches: map[MaintenanceStatus]bool{
				MaintenanceOpen: true, MaintenanceCanceled: true,
			},
		},
		{
			raw:    "Active",
			want:   StatusFilterActive,
			pseudo: true,
			matches: map[MaintenanceStatus]bool{
				MaintenanceOpen: true, MaintenanceInProgress: true, MaintenanceCompleted: false, MaintenanceCanceled: false,
			},
		},
		{
			raw:    "inactive",
			want:   StatusFilterInactive,
			pseudo: true,
			matches: map[MaintenanceStatus]bool{
				MaintenanceOpen: false, MaintenanceInProgress: false, MaintenanceCompleted: true, MaintenanceCanceled: true,
			},
		},
		{
			raw:  "open",
			want: StatusFilter(MaintenanceOpen),
			matches: map[MaintenanceStatus]bool{
				MaintenanceOpen: true, MaintenanceInProgress: false,
			},
		},
		{raw: "bogus", want: StatusFilterNone},
	}
	for _, tc := range tests {
		got := ParseStatusFilter(tc.raw)
		if got != tc.want {
			t.Fatalf("ParseStatusFilter(%q) = %q, want %q", tc.raw, got, tc.want)
		}
		if got.Pseudo() != tc.pseudo {
			t.Fatalf("%q.Pseudo() = %v", got, got.Pseudo())
		}
		for status, want := range tc.matches {
			if got.Matches(status) != want {
				t.Fatalf("%q.Matches(%s) = %v, want %v", got, status, !want, want)
			}
		}
	}

	if status, ok := StatusFilter("COMPLETED").Status(); !ok || status != MaintenanceCompleted {
		t.Fatalf("Status() = %q, %v", status, ok)
	}
	if _, ok := StatusFilterActive.Status(); ok {
		t.Fatal("pseudo filter should not select a concrete status")
	}
}
