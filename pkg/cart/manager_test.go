package cart

import "testing"

func TestManagerSessionIsStablePerUser(t *testing.T) {
	t.Parallel()
	m := NewManager()

	first := m.Session("user-a")
	if first == nil {
		t.Fatal("Session returned nil cart")
	}
	if m.Session("user-a") != first {
		t.Error("second lookup returned a different cart")
	}
	if m.Session("user-b") == first {
		t.Error("users share a cart")
	}
}

func TestManagerDropDiscardsSession(t *testing.T) {
	t.Parallel()
	m := NewManager()

	amount := 50.0
	old := m.Session("user-a")
	old.Add("food", "src-1", "Rice", riceBase, &amount, "g", "")

	m.Drop("user-a")

	fresh := m.Session("user-a")
	if fresh == old {
		t.Fatal("Drop kept the old session alive")
	}
	if !fresh.IsEmpty() {
		t.Error("recreated session is not empty")
	}
}
