package authroles

import (
	domainauth "github.com/dtapi/booking-go/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups to application roles by simple string
// membership rules. Admin wins over translator, translator over customer.
type StaticRoleMapper struct {
	SuperAdminGroup string
	AdminGroup      string
	TranslatorGroup string
	CustomerGroup   string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	rules := []struct {
		group string
		role  domainauth.Role
	}{
		{m.SuperAdminGroup, domainauth.RoleSuperAdmin},
		{m.AdminGroup, domainauth.RoleAdmin},
		{m.TranslatorGroup, domainauth.RoleTranslator},
		{m.CustomerGroup, domainauth.RoleCustomer},
	}
	for _, rule := range rules {
		if rule.group == "" {
			continue
		}
		for _, g := range groups {
			if g == rule.group {
				return rule.role
			}
		}
	}
	return domainauth.RoleGuest
}
