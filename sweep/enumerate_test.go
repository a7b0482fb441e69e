package sweep

import (
	"testing"
)

func productCatalog() *Catalog {
	return &Catalog{
		SLOLatenciesMs:  []float64{10, 100},
		SLOThroughputs:  []float64{1000, 1e7},
		SimulationYears: []int{5, 10},
		Frontends:       []HardwareDescriptor{{Path: "f1.json", Name: "f1"}, {Path: "f2.json", Name: "f2"}},
		Caches:          []HardwareDescriptor{{Path: "c1.json", Name: "c1"}},
		Backends:        []HardwareDescriptor{{Path: "b1.json", Name: "b1"}, {Path: "b2.json", Name: "b2"}, {Path: "b3.json", Name: "b3"}},
	}
}

func TestTasks_CountEqualsAxisProduct(t *testing.T) {
	// GIVEN a catalog with axis sizes 2,2,2,2,1,3
	c := productCatalog()

	// WHEN the sweep is enumerated
	tasks := Tasks(c)

	// THEN the task count is the exact Cartesian product
	want := 2 * 2 * 2 * 2 * 1 * 3
	if len(tasks) != want {
		t.Fatalf("expected %d tasks, got %d", want, len(tasks))
	}
	if c.TaskCount() != want {
		t.Errorf("TaskCount() = %d, want %d", c.TaskCount(), want)
	}

	// AND no combination repeats
	seen := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		key := task.String()
		if seen[key] {
			t.Fatalf("duplicate task %s", key)
		}
		seen[key] = true
	}
}

func TestTasks_FixedNestingOrder(t *testing.T) {
	// GIVEN the concrete scenario: frontend={A,B}, cache={X}, backend={P,Q},
	// one SLO pair, one horizon
	c := &Catalog{
		SLOLatenciesMs:  []float64{10},
		SLOThroughputs:  []float64{1e7},
		SimulationYears: []int{10},
		Frontends:       []HardwareDescriptor{{Name: "A"}, {Name: "B"}},
		Caches:          []HardwareDescriptor{{Name: "X"}},
		Backends:        []HardwareDescriptor{{Name: "P"}, {Name: "Q"}},
	}

	// WHEN enumerated
	tasks := Tasks(c)

	// THEN exactly 4 tasks appear in order (A,X,P),(A,X,Q),(B,X,P),(B,X,Q)
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}
	wantOrder := [][3]string{
		{"A", "X", "P"},
		{"A", "X", "Q"},
		{"B", "X", "P"},
		{"B", "X", "Q"},
	}
	for i, want := range wantOrder {
		got := [3]string{tasks[i].Frontend.Name, tasks[i].Cache.Name, tasks[i].Backend.Name}
		if got != want {
			t.Errorf("task %d: got %v, want %v", i, got, want)
		}
	}
}

func TestTasks_GroupsAreContiguous(t *testing.T) {
	// GIVEN a multi-group catalog
	c := productCatalog()

	// WHEN enumerated
	tasks := Tasks(c)

	// THEN every group's tasks form one contiguous run of the sequence
	finished := make(map[GroupKey]bool)
	var current GroupKey
	for i, task := range tasks {
		key := task.Group()
		if i == 0 || key != current {
			if finished[key] {
				t.Fatalf("group %s reappears at task %d after being left", key, i)
			}
			if i > 0 {
				finished[current] = true
			}
			current = key
		}
	}

	// AND the group keys appear in Groups() order
	groups := Groups(c)
	hardwarePerGroup := len(c.Frontends) * len(c.Caches) * len(c.Backends)
	for g, key := range groups {
		if tasks[g*hardwarePerGroup].Group() != key {
			t.Errorf("group %d: sequence starts with %s, want %s", g, tasks[g*hardwarePerGroup].Group(), key)
		}
	}
}

func TestTasks_Restartable(t *testing.T) {
	// GIVEN a catalog
	c := productCatalog()

	// WHEN enumerated twice
	first := Tasks(c)
	second := Tasks(c)

	// THEN both sequences are identical
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("task %d differs between enumerations", i)
		}
	}
}
