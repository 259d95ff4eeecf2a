// SPDX-License-Identifier: MPL-2.0

package strcase

import "testing"

func TestUnderscore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Foo", "foo"},
		{"FooBar", "foo_bar"},
		{"fooBar", "foo_bar"},
		{"HTTPRequest", "http_request"},
		{"UserID", "user_id"},
		{"Version2Beta", "version2_beta"},
		{"Web.RouterHelpers", "web/router_helpers"},
		{"already_snake", "already_snake"},
		{"kebab-case", "kebab_case"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Underscore(tt.in); got != tt.want {
				t.Errorf("Underscore(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnderscore_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"FooBar", "HTTPRequest", "Web.Router"} {
		once := Underscore(in)
		if twice := Underscore(once); twice != once {
			t.Errorf("Underscore(Underscore(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestCamelize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"foo", "Foo"},
		{"foo_bar", "FooBar"},
		{"foo__bar", "FooBar"},
		{"_foo_bar", "_FooBar"},
		{"web/router_helpers", "Web.RouterHelpers"},
		{"FooBar", "FooBar"},
		{"http_API", "HttpAPI"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := Camelize(tt.in); got != tt.want {
				t.Errorf("Camelize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCamelizeLower(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"foo_bar", "fooBar"},
		{"pool_size", "poolSize"},
		{"_private", "_Private"},
	}

	for _, tt := range tests {
		if got := CamelizeLower(tt.in); got != tt.want {
			t.Errorf("CamelizeLower(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"FooBar", "Web.RouterHelpers", "PoolSize"} {
		if got := Camelize(Underscore(in)); got != in {
			t.Errorf("Camelize(Underscore(%q)) = %q", in, got)
		}
	}
}
