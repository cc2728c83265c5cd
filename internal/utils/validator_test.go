package utils

import "testing"

func TestValidateUUID(t *testing.T) {
	cases := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"canonical", "aaf39f4e-6d25-47e1-9c0b-1c2d3e4f5a6b", false},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", false},
		{"empty", "", true},
		{"garbage", "not-a-uuid", true},
		{"missing hyphens", "aaf39f4e6d2547e19c0b1c2d3e4f5a6b", true},
		{"urn form", "urn:uuid:aaf39f4e-6d25-47e1-9c0b-1c2d3e4f5a6b", true},
		{"braced form", "{aaf39f4e-6d25-47e1-9c0b-1c2d3e4f5a6b}", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUUID(tc.id)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateUUID(%q) error = %v, wantErr %v", tc.id, err, tc.wantErr)
			}
		})
	}
}

func TestValidateUUIDs(t *testing.T) {
	valid := []string{
		"aaf39f4e-6d25-47e1-9c0b-1c2d3e4f5a6b",
		"bbf39f4e-6d25-47e1-9c0b-1c2d3e4f5a6c",
	}
	if err := ValidateUUIDs(valid); err != nil {
		t.Errorf("ValidateUUIDs(valid) = %v, want nil", err)
	}
	if err := ValidateUUIDs(nil); err != nil {
		t.Errorf("ValidateUUIDs(nil) = %v, want nil", err)
	}
	if err := ValidateUUIDs(append(valid, "broken")); err == nil {
		t.Error("ValidateUUIDs with a malformed element must fail")
	}
}
