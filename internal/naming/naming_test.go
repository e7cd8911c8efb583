package naming

import "testing"

func TestFormatTargetDir(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foo", "foo"},
		{"foo/", "foo"},
		{"foo///", "foo"},
		{"  foo/bar/  ", "foo/bar"},
		{"", ""},
		{"   ", ""},
		{".", "."},
	}
	for _, tc := range cases {
		if got := FormatTargetDir(tc.in); got != tc.want {
			t.Errorf("FormatTargetDir(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	t.Run("idempotent", func(t *testing.T) {
		for _, in := range []string{"foo///", "  bar ", "a/b/c/", "", "x"} {
			once := FormatTargetDir(in)
			if twice := FormatTargetDir(once); twice != once {
				t.Errorf("FormatTargetDir not idempotent for %q: %q != %q", in, twice, once)
			}
		}
	})
}

func TestIsValidPackageName(t *testing.T) {
	valid := []string{
		"my-app",
		"@scope/pkg-name",
		"~tilde",
		"-leading-dash",
		"a",
		"pkg.name_2",
	}
	for _, name := range valid {
		if !IsValidPackageName(name) {
			t.Errorf("IsValidPackageName(%q) = false, want true", name)
		}
	}

	invalid := []string{
		"My Project",
		"",
		".hidden",
		"_private",
		"@Scope/pkg",
		"@/pkg",
		"UPPER",
		"name!",
	}
	for _, name := range invalid {
		if IsValidPackageName(name) {
			t.Errorf("IsValidPackageName(%q) = true, want false", name)
		}
	}
}

func TestToValidPackageName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Cool App!!", "my-cool-app-"},
		{"  spaced   out  ", "spaced-out"},
		{".hidden", "hidden"},
		{"_private", "private"},
		{"already-valid", "already-valid"},
		{"Dots.and_scores", "dots-and-scores"},
	}
	for _, tc := range cases {
		got := ToValidPackageName(tc.in)
		if got != tc.want {
			t.Errorf("ToValidPackageName(%q) = %q, want %q", tc.in, got, tc.want)
		}
		if !IsValidPackageName(got) {
			t.Errorf("ToValidPackageName(%q) = %q is not a valid package name", tc.in, got)
		}
	}

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{"My Cool App!!", "..double", "__deep", "Mixed CASE .dots", "ok"}
		for _, in := range inputs {
			once := ToValidPackageName(in)
			if twice := ToValidPackageName(once); twice != once {
				t.Errorf("ToValidPackageName not idempotent for %q: %q != %q", in, twice, once)
			}
		}
	})
}

func TestProjectNameFromDir(t *testing.T) {
	if got := ProjectNameFromDir("apps/demo", "/work"); got != "demo" {
		t.Errorf("ProjectNameFromDir = %q, want %q", got, "demo")
	}
	if got := ProjectNameFromDir(".", "/work/current-dir"); got != "current-dir" {
		t.Errorf("ProjectNameFromDir = %q, want %q", got, "current-dir")
	}
}
