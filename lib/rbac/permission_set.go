package rbac

import (
	"sort"
	"workforce-backend/models"
	dbmodels "workforce-backend/models/db"
)

// PermissionSet - эффективный набор прав пользователя.
// Набор строится строгим объединением прав всех назначенных ролей,
// запрещающих правил нет. Роль SUPER_ADMIN дает явный признак полного
// доступа, проверка по нему выполняется до поиска в наборе
type PermissionSet struct {
	all     bool
	grants  map[models.PermissionCode]struct{}
	scoped  map[models.PermissionCode]map[string]struct{}
	roles   []RoleGrant
}

// RoleGrant - дескриптор назначенной роли
type RoleGrant struct {
	Code       string
	Name       string
	WorksiteID string // заполнен для site_scoped ролей
}

// Resolve собирает набор прав из назначений ролей.
// Назначения должны быть загружены вместе с ролью и ее правами
func Resolve(assignments []dbmodels.UserRole) PermissionSet {
	set := PermissionSet{
		grants: map[models.PermissionCode]struct{}{},
		scoped: map[models.PermissionCode]map[string]struct{}{},
	}
	for _, assignment := range assignments {
		role := assignment.Role
		set.roles = append(set.roles, RoleGrant{
			Code:       role.Code,
			Name:       role.Name,
			WorksiteID: assignment.WorksiteID,
		})
		if role.Code == models.RoleCodeSuperAdmin {
			set.all = true
			continue
		}
		siteScoped := role.SiteScoped && assignment.WorksiteID != ""
		for _, perm := range role.Permissions {
			if siteScoped {
				sites, exist := set.scoped[perm.PermissionCode]
				if !exist {
					sites = map[string]struct{}{}
					set.scoped[perm.PermissionCode] = sites
				}
				sites[assignment.WorksiteID] = struct{}{}
				continue
			}
			set.grants[perm.PermissionCode] = struct{}{}
		}
	}
	return set
}

// Has проверяет право без учета привязки к объекту:
// право из site_scoped роли здесь тоже считается выданным
func (s PermissionSet) Has(code models.PermissionCode) bool {
	if s.all {
		return true
	}
	if _, exist := s.grants[code]; exist {
		return true
	}
	_, exist := s.scoped[code]
	return exist
}

// HasAt проверяет право в рамках конкретного объекта
func (s PermissionSet) HasAt(code models.PermissionCode, worksiteID string) bool {
	if s.all {
		return true
	}
	if _, exist := s.grants[code]; exist {
		return true
	}
	sites, exist := s.scoped[code]
	if !exist {
		return false
	}
	_, exist = sites[worksiteID]
	return exist
}

func (s PermissionSet) IsSuperAdmin() bool {
	return s.all
}

func (s PermissionSet) Roles() []RoleGrant {
	return s.roles
}

// Codes возвращает отсортированный список кодов выданных прав
func (s PermissionSet) Codes() []string {
	if s.all {
		codes := make([]string, 0, len(models.AllPermissions))
		for _, code := range models.AllPermissions {
			codes = append(codes, string(code))
		}
		sort.Strings(codes)
		return codes
	}
	uniq := map[string]struct{}{}
	for code := range s.grants {
		uniq[string(code)] = struct{}{}
	}
	for code := range s.scoped {
		uniq[string(code)] = struct{}{}
	}
	codes := make([]string, 0, len(uniq))
	for code := range uniq {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
