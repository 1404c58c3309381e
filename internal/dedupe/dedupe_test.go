package dedupe

import (
	"errors"
	"reflect"
	"testing"
)

func findGroups(t *testing.T, names []string, threshold float64) []Group {
	t.Helper()
	groups, err := FindDuplicateGroups(names, Options{Threshold: threshold})
	if err != nil {
		t.Fatalf("FindDuplicateGroups: %v", err)
	}
	return groups
}

func TestFindDuplicateGroupsUbisoft(t *testing.T) {
	names := []string{
		"Ubisoft Montreal",
		"Ubisoft Canada",
		"Ubisoft Studios",
		"Ubisoft Inc.",
		"Ubisoft",
	}
	groups := findGroups(t, names, 0.5)

	// "Ubisoft Studios", "Ubisoft Inc." and "Ubisoft" all normalize to the
	// single token "ubisoft" and must end up in one group.
	var ubisoft *Group
	for i := range groups {
		if groups[i].Key == "ubisoft" {
			ubisoft = &groups[i]
		}
	}
	if ubisoft == nil {
		t.Fatalf("no group under key %q; groups: %v", "ubisoft", groups)
	}
	want := []string{"Ubisoft Studios", "Ubisoft Inc.", "Ubisoft"}
	if !reflect.DeepEqual(ubisoft.Members, want) {
		t.Errorf("ubisoft group = %v, want %v", ubisoft.Members, want)
	}
}

func TestFindDuplicateGroupsNoMatches(t *testing.T) {
	groups := findGroups(t, []string{"Valve", "Sony", "Nintendo"}, 0.5)
	if len(groups) != 0 {
		t.Errorf("groups = %v, want none", groups)
	}
}

func TestFindDuplicateGroupsSunfire(t *testing.T) {
	groups := findGroups(t, []string{"Sunfire Software", "Sunfire Studios"}, 0.5)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	want := []string{"Sunfire Software", "Sunfire Studios"}
	if !reflect.DeepEqual(groups[0].Members, want) {
		t.Errorf("members = %v, want %v", groups[0].Members, want)
	}
}

func TestFindDuplicateGroupsSonyLtd(t *testing.T) {
	groups := findGroups(t, []string{"Sony Ltd", "Sony"}, 0.5)
	if len(groups) != 1 || groups[0].Size() != 2 {
		t.Fatalf("groups = %v, want one group of size 2", groups)
	}
}

func TestFindDuplicateGroupsPreservesRawNames(t *testing.T) {
	names := []string{"SONY Ltd.", "sony"}
	groups := findGroups(t, names, 0.5)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if !reflect.DeepEqual(groups[0].Members, names) {
		t.Errorf("members = %v, want original strings %v", groups[0].Members, names)
	}
}

func TestFindDuplicateGroupsGreedyFirstRepresentative(t *testing.T) {
	// All three share the block key "harbor". The chain normalizes to:
	//   A {harbor, iron}
	//   B {harbor, iron, ridge}
	//   C {harbor, iron, ridge, summit, valley}
	// Jaccard(A,B)=2/3 and Jaccard(B,C)=3/5 both clear 0.5, but
	// Jaccard(A,C)=2/5 does not. Transitive closure would pull C in through
	// B; the greedy pass compares C against the representative A only, so C
	// stays out and is dropped as a singleton.
	names := []string{
		"Harbor Iron",
		"Harbor Iron Ridge",
		"Harbor Iron Ridge Summit Valley",
	}
	groups := findGroups(t, names, 0.5)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	want := []string{"Harbor Iron", "Harbor Iron Ridge"}
	if !reflect.DeepEqual(groups[0].Members, want) {
		t.Errorf("members = %v, want %v (greedy, not transitive closure)", groups[0].Members, want)
	}
}

func TestFindDuplicateGroupsEarlierGroupClaimsName(t *testing.T) {
	// B is closer to C than to A, but A is scanned first and claims B.
	//   A {harbor, iron}
	//   B {harbor, iron, ridge}        joins A (2/3 >= 0.5)
	//   C {harbor, iron, ridge, oak}   vs A: 2/4 >= 0.5, also joins A
	names := []string{
		"Harbor Iron",
		"Harbor Iron Ridge",
		"Harbor Iron Ridge Oak",
	}
	groups := findGroups(t, names, 0.5)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Members[0] != "Harbor Iron" {
		t.Errorf("representative = %q, want %q", groups[0].Members[0], "Harbor Iron")
	}
	if groups[0].Size() != 3 {
		t.Errorf("group size = %d, want 3", groups[0].Size())
	}
}

func TestFindDuplicateGroupsDisjoint(t *testing.T) {
	names := []string{
		"Sunfire Software",
		"Sunfire Studios",
		"Sunfire",
		"Harbor Iron",
		"Harbor Iron Ridge",
		"Sony Ltd",
		"Sony",
	}
	groups := findGroups(t, names, 0.5)

	counts := make(map[string]int)
	for _, group := range groups {
		if group.Size() < 2 {
			t.Errorf("group %v has fewer than two members", group)
		}
		for _, member := range group.Members {
			counts[member]++
		}
	}
	for member, count := range counts {
		if count > 1 {
			t.Errorf("name %q appears in %d groups, want at most 1", member, count)
		}
	}
}

func TestFindDuplicateGroupsNoiseOnlyNamesNeverGroup(t *testing.T) {
	// Names that normalize to nothing share the sentinel block but have
	// Jaccard 0 against each other, so no group forms.
	groups := findGroups(t, []string{"The Group Inc.", "Entertainment Ltd", "Co."}, 0.5)
	if len(groups) != 0 {
		t.Errorf("groups = %v, want none", groups)
	}
}

func TestFindDuplicateGroupsThresholdMonotonic(t *testing.T) {
	names := []string{
		"Ubisoft Montreal",
		"Ubisoft Canada",
		"Ubisoft",
		"Ubisoft Inc.",
		"Sunfire Software",
		"Sunfire Studios",
		"Harbor Iron",
		"Harbor Iron Ridge",
		"Valve",
	}

	grouped := func(threshold float64) map[string]bool {
		members := make(map[string]bool)
		for _, group := range findGroups(t, names, threshold) {
			for _, member := range group.Members {
				members[member] = true
			}
		}
		return members
	}

	low := grouped(0.3)
	mid := grouped(0.5)
	high := grouped(0.9)

	for member := range high {
		if !mid[member] {
			t.Errorf("%q grouped at 0.9 but not at 0.5", member)
		}
	}
	for member := range mid {
		if !low[member] {
			t.Errorf("%q grouped at 0.5 but not at 0.3", member)
		}
	}
}

func TestFindDuplicateGroupsDeterministicOrder(t *testing.T) {
	// The zulu block is populated before the apple block, so its group must
	// come first regardless of key sort order or map iteration.
	names := []string{"Zulu Ltd", "Zulu", "Apple Ltd", "Apple"}

	first := findGroups(t, names, 0.5)
	if len(first) != 2 {
		t.Fatalf("got %d groups, want 2", len(first))
	}
	if first[0].Key != "zulu" || first[1].Key != "apple" {
		t.Errorf("group order = [%s %s], want [zulu apple]", first[0].Key, first[1].Key)
	}

	for run := 0; run < 20; run++ {
		again := findGroups(t, names, 0.5)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced different output: %v vs %v", run, again, first)
		}
	}
}

func TestFindDuplicateGroupsThresholdValidation(t *testing.T) {
	tests := []struct {
		name      string
		threshold float64
		wantErr   bool
	}{
		{"default when zero", 0, false},
		{"lower bound excluded", -0.1, true},
		{"upper bound included", 1, false},
		{"above one", 1.5, true},
		{"typical", 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FindDuplicateGroups([]string{"Sony", "Sony Ltd"}, Options{Threshold: tt.threshold})
			if tt.wantErr && !errors.Is(err, ErrInvalidThreshold) {
				t.Errorf("threshold %v: err = %v, want ErrInvalidThreshold", tt.threshold, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("threshold %v: unexpected error %v", tt.threshold, err)
			}
		})
	}
}

func TestFindDuplicateGroupsThresholdIsInclusive(t *testing.T) {
	// Jaccard({acme, worldwide}, {acme}) is exactly 0.5; >= threshold groups.
	groups := findGroups(t, []string{"Acme Worldwide", "Acme"}, 0.5)
	if len(groups) != 1 || groups[0].Size() != 2 {
		t.Errorf("groups = %v, want one group of size 2 at the threshold boundary", groups)
	}
}

func TestFindDuplicateGroupsExtraNoiseWords(t *testing.T) {
	names := []string{"Acme Worldwide Partners", "Acme"}

	plain := findGroups(t, names, 0.5)
	if len(plain) != 0 {
		t.Fatalf("without extra noise words got %v, want none", plain)
	}

	extended, err := FindDuplicateGroups(names, Options{
		Threshold:       0.5,
		ExtraNoiseWords: []string{"worldwide", "partners"},
	})
	if err != nil {
		t.Fatalf("FindDuplicateGroups: %v", err)
	}
	if len(extended) != 1 || extended[0].Size() != 2 {
		t.Errorf("with extra noise words got %v, want one group of size 2", extended)
	}
}

func TestSummarize(t *testing.T) {
	groups := []Group{
		{Key: "sony", Members: []string{"Sony", "Sony Ltd"}},
		{Key: "ubisoft", Members: []string{"Ubisoft", "Ubisoft Inc.", "Ubisoft Studios"}},
	}
	stats := Summarize(groups)
	if stats.Groups != 2 || stats.Duplicates != 5 || stats.LargestGroup != 3 {
		t.Errorf("Summarize = %+v, want {Groups:2 Duplicates:5 LargestGroup:3}", stats)
	}

	empty := Summarize(nil)
	if empty != (Stats{}) {
		t.Errorf("Summarize(nil) = %+v, want zero value", empty)
	}
}
