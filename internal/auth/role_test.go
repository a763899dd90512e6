package auth

import (
	"errors"
	"reflect"
	"testing"
)

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		primaryType  string
		isAuthorized bool
		expected     Role
	}{
		{"legal", false, RoleLegal},
		{"legal", true, RoleAdminLegal},
		{"  Legal ", true, RoleAdminLegal},
		{"HUMANITARIO", false, RoleHumanitario},
		{"psicosocial", true, RoleAdminPsicosocial},
		{"comunicacion", true, RoleAdminComunicacion},
		{"almacen", false, RoleAlmacen},
		{"admin-legal", false, RoleAdminLegal},
		{"admin-legal", true, RoleAdminLegal},
		{"superuser", false, RoleSuperuser},
	}
	for _, test := range tests {
		role, err := DeriveRole(test.primaryType, test.isAuthorized)
		if err != nil {
			t.Errorf("DeriveRole(%q, %v) returned error: %v", test.primaryType, test.isAuthorized, err)
			continue
		}
		if role != test.expected {
			t.Errorf("DeriveRole(%q, %v): expected role[%s], got role[%s]", test.primaryType, test.isAuthorized, test.expected, role)
		}
	}
}

func TestDeriveRoleUnknownDepartment(t *testing.T) {
	for _, tag := range []string{"finanzas", "", "todos"} {
		if _, err := DeriveRole(tag, true); !errors.Is(err, ErrorUnknownDepartment) {
			t.Errorf("DeriveRole(%q): expected ErrorUnknownDepartment, got: %v", tag, err)
		}
	}
}

func TestParseTypes(t *testing.T) {
	types := ParseTypes("legal, Humanitario,,ALMACEN ")
	expected := []string{"legal", "humanitario", "almacen"}
	if !reflect.DeepEqual(types, expected) {
		t.Errorf("expected %v, got %v", expected, types)
	}
	if len(ParseTypes("")) != 0 {
		t.Errorf("expected an empty type field to parse to no tags")
	}
}

func TestIsDepartment(t *testing.T) {
	for tag, expected := range map[string]bool{
		"legal":       true,
		"humanitario": true,
		"admin-legal": false,
		"superuser":   false,
		"todos":       false,
		"finanzas":    false,
	} {
		if IsDepartment(tag) != expected {
			t.Errorf("IsDepartment(%q): expected %v", tag, expected)
		}
	}
}
