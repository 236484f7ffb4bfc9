package ast

import "testing"

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"name":          "Name",
		"created_at":    "CreatedAt",
		"a_b_c":         "ABC",
		"already_Camel": "AlreadyCamel",
		"_leading":      "Leading",
		"trailing_":     "Trailing",
		"double__under": "DoubleUnder",
		"x":             "X",
		"":              "",
	}
	for in, want := range cases {
		if got := CamelCase(in); got != want {
			t.Errorf("CamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGoNameFollowsVisibility(t *testing.T) {
	pub := ChangesetDecl{Name: "userChangeset", Vis: VisPublic}
	if got := pub.GoName(); got != "UserChangeset" {
		t.Errorf("public GoName = %q", got)
	}
	priv := ChangesetDecl{Name: "UserChangeset", Vis: VisPrivate}
	if got := priv.GoName(); got != "userChangeset" {
		t.Errorf("private GoName = %q", got)
	}
}

func TestCtorName(t *testing.T) {
	pub := ChangesetDecl{Name: "user", Vis: VisPublic}
	if got := pub.CtorName(); got != "NewUser" {
		t.Errorf("public CtorName = %q", got)
	}
	priv := ChangesetDecl{Name: "draft", Vis: VisPrivate}
	if got := priv.CtorName(); got != "newDraft" {
		t.Errorf("private CtorName = %q", got)
	}
}

func TestExportable(t *testing.T) {
	cases := []struct {
		name string
		vis  Visibility
		want bool
	}{
		{"user", VisPublic, true},
		{"пользователь", VisPublic, true},
		{"_user", VisPublic, false},
		{"_user", VisPrivate, true},
	}
	for _, tc := range cases {
		d := ChangesetDecl{Name: tc.name, Vis: tc.vis}
		if got := d.Exportable(); got != tc.want {
			t.Errorf("Exportable(%q, %v) = %v, want %v", tc.name, tc.vis, got, tc.want)
		}
	}
}

func TestSetterName(t *testing.T) {
	f := FieldDecl{Name: "created_at"}
	if got := f.SetterName(); got != "WithCreatedAt" {
		t.Errorf("SetterName = %q", got)
	}
}

func TestTypeExprGoString(t *testing.T) {
	typ := &TypeExpr{
		Kind: TypeMap,
		Key:  &TypeExpr{Kind: TypeName, Name: "string"},
		Elem: &TypeExpr{
			Kind: TypeSlice,
			Elem: &TypeExpr{
				Kind: TypePointer,
				Elem: &TypeExpr{Kind: TypeQualified, Qualifier: "url", Name: "URL"},
			},
		},
	}
	if got := typ.GoString(); got != "map[string][]*url.URL" {
		t.Errorf("GoString = %q", got)
	}
	if got := typ.Qualifiers(nil); len(got) != 1 || got[0] != "url" {
		t.Errorf("Qualifiers = %v", got)
	}
}

func TestCoreType(t *testing.T) {
	if got := (&TypeExpr{Kind: TypeName, Name: "int64"}).CoreType(); got != "int64" {
		t.Errorf("int64 CoreType = %q", got)
	}
	for _, typ := range []*TypeExpr{
		{Kind: TypeName, Name: "MyType"},
		{Kind: TypeQualified, Qualifier: "time", Name: "Time"},
		{Kind: TypeSlice, Elem: &TypeExpr{Kind: TypeName, Name: "int"}},
	} {
		if got := typ.CoreType(); got != "" {
			t.Errorf("CoreType(%s) = %q, want none", typ.GoString(), got)
		}
	}
}
