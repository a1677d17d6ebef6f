package memrt

import "testing"

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Add", "add"},
		{"SetLabel", "set_label"},
		{"GetHTTPURL", "get_httpurl"},
		{"GetURLPath", "get_url_path"},
		{"HTTPServer", "http_server"},
		{"ID", "id"},
		{"lower", "lower"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
