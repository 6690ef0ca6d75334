// SPDX-License-Identifier: MPL-2.0

package platform

import "testing"

func TestExeBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "posix path", path: "/bin/bash", want: "bash"},
		{name: "windows path with exe", path: `C:\Windows\System32\cmd.exe`, want: "cmd"},
		{name: "bare name with exe", path: "pwsh.exe", want: "pwsh"},
		{name: "bare name", path: "sh", want: "sh"},
		{name: "mixed separators", path: `C:/tools\pwsh.exe`, want: "pwsh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExeBase(tt.path); got != tt.want {
				t.Errorf("ExeBase(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
