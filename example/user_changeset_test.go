// The test package is external on purpose: the generated type is public, so
// its whole surface must work through the exported API alone.
package example_test

import (
	"testing"
	"time"

	"changeset/example"
)

func TestFreshChangesetIsEmpty(t *testing.T) {
	c := example.NewUserChangeset()
	if c.HasChanged() {
		t.Fatal("fresh changeset must report no changes")
	}
	if c.Name.IsSome() || c.Email.IsSome() || c.Age.IsSome() || c.UpdatedAt.IsSome() {
		t.Fatal("fresh changeset must have every field unset")
	}
}

func TestSetterTouchesOnlyItsField(t *testing.T) {
	c := example.NewUserChangeset().WithName("alice")

	if v, ok := c.Name.Get(); !ok || v != "alice" {
		t.Fatalf("Name = %q, %v", v, ok)
	}
	if c.Email.IsSome() || c.Age.IsSome() || c.UpdatedAt.IsSome() {
		t.Fatal("other fields must stay unset")
	}
	if !c.HasChanged() {
		t.Fatal("changeset with one set field must report a change")
	}
}

func TestSettersDoNotMutateReceiver(t *testing.T) {
	base := example.NewUserChangeset()
	_ = base.WithName("alice")
	if base.Name.IsSome() {
		t.Fatal("setter must copy, not mutate")
	}
}

func TestGenericSetterAcceptsDefinedTypes(t *testing.T) {
	type Username string
	type Years int

	c := example.UserChangesetWithName(example.NewUserChangeset(), Username("bob"))
	c = example.UserChangesetWithAge(c, Years(34))

	if v, _ := c.Name.Get(); v != "bob" {
		t.Fatalf("Name = %q", v)
	}
	if v, _ := c.Age.Get(); v != 34 {
		t.Fatalf("Age = %d", v)
	}
}

func TestMergeRightBias(t *testing.T) {
	left := example.NewUserChangeset().WithName("alice").WithAge(30)
	right := example.NewUserChangeset().WithName("bob")

	left.Merge(right)

	if v, _ := left.Name.Get(); v != "bob" {
		t.Fatalf("Name = %q, right side must win", v)
	}
	if v, _ := left.Age.Get(); v != 30 {
		t.Fatalf("Age = %d, unset right field must not clobber", v)
	}
}

func TestMergeIsNotCommutative(t *testing.T) {
	a := example.NewUserChangeset().WithName("alice")
	b := example.NewUserChangeset().WithName("bob")

	ab := a
	ab.Merge(b)
	ba := b
	ba.Merge(a)

	va, _ := ab.Name.Get()
	vb, _ := ba.Name.Get()
	if va != "bob" || vb != "alice" {
		t.Fatalf("merge order ignored: %q / %q", va, vb)
	}
}

func TestMergeEmptyIsIdentity(t *testing.T) {
	c := example.NewUserChangeset().WithName("alice").WithEmail("a@example.com")
	before := c

	c.Merge(example.NewUserChangeset())
	if c != before {
		t.Fatal("merging an empty changeset must change nothing")
	}
}

func TestMergeIdempotent(t *testing.T) {
	c := example.NewUserChangeset().WithName("alice")
	patch := example.NewUserChangeset().WithEmail("a@example.com")

	c.Merge(patch)
	once := c
	c.Merge(patch)
	if c != once {
		t.Fatal("merging the same patch twice must equal merging it once")
	}
}

func TestHasChangedGrid(t *testing.T) {
	cases := []struct {
		name string
		c    example.UserChangeset
		want bool
	}{
		{"none", example.NewUserChangeset(), false},
		{"name only", example.NewUserChangeset().WithName("a"), true},
		{"age only", example.NewUserChangeset().WithAge(1), true},
		{"both", example.NewUserChangeset().WithName("a").WithAge(1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.HasChanged(); got != tc.want {
				t.Fatalf("HasChanged() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProfileUpdateScenario(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	form := example.NewUserChangeset().WithName("alice").WithEmail("old@example.com")
	audit := example.NewUserChangeset().WithEmail("new@example.com").WithUpdatedAt(now)

	form.Merge(audit)

	if v, _ := form.Name.Get(); v != "alice" {
		t.Fatalf("Name = %q", v)
	}
	if v, _ := form.Email.Get(); v != "new@example.com" {
		t.Fatalf("Email = %q", v)
	}
	if v, _ := form.UpdatedAt.Get(); !v.Equal(now) {
		t.Fatalf("UpdatedAt = %v", v)
	}
	if v := form.Age.GetOr(18); v != 18 {
		t.Fatalf("GetOr fallback = %d", v)
	}
}
