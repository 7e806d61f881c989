package party

import "testing"

func setContactPrimary(c *Contact, v bool) { c.IsPrimaryContact = v }

func TestSetPrimarySingleWinner(t *testing.T) {
	contacts := []Contact{
		{Name: "a", IsPrimaryContact: true},
		{Name: "b"},
		{Name: "c", IsPrimaryContact: true},
	}

	SetPrimary(contacts, 1, setContactPrimary)

	for i, c := range contacts {
		want := i == 1
		if c.IsPrimaryContact != want {
			t.Fatalf("contact %d: primary=%v, want %v", i, c.IsPrimaryContact, want)
		}
	}
}

func TestSetPrimaryOutOfRangeClearsAll(t *testing.T) {
	contacts := []Contact{
		{Name: "a", IsPrimaryContact: true},
		{Name: "b", IsPrimaryContact: true},
	}

	SetPrimary(contacts, 5, setContactPrimary)

	for i, c := range contacts {
		if c.IsPrimaryContact {
			t.Fatalf("contact %d still primary", i)
		}
	}
}

func TestReassignAfterRemovalHandsToFirst(t *testing.T) {
	contacts := []Contact{
		{Name: "b"},
		{Name: "c"},
	}

	ReassignAfterRemoval(contacts, true, setContactPrimary)

	if !contacts[0].IsPrimaryContact {
		t.Fatal("expected first remaining contact to become primary")
	}
	if contacts[1].IsPrimaryContact {
		t.Fatal("expected second contact to stay non-primary")
	}
}

func TestReassignAfterRemovalNoopWhenNotPrimary(t *testing.T) {
	contacts := []Contact{{Name: "b"}}

	ReassignAfterRemoval(contacts, false, setContactPrimary)

	if contacts[0].IsPrimaryContact {
		t.Fatal("expected no reassignment when removed member was not primary")
	}
}

func TestReassignAfterRemovalEmptyCollection(t *testing.T) {
	ReassignAfterRemoval(nil, true, setContactPrimary)
}
