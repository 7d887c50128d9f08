// Package policy holds the access policy table: for each entity
// operation, whether it is public and which staff roles may call it.
// Route registration consumes this table instead of every handler
// hand-rolling its own role check.
package policy

import "zooarcadia/internal/httpapi/models"

// Rule describes the gate in front of one operation.
// Public rules skip authentication entirely. A non-public rule with no
// roles admits any authenticated user.
type Rule struct {
	Public bool
	Roles  []string
}

type Table map[string]Rule

// Default is the policy table for the whole API, keyed "entity.operation".
func Default() Table {
	return Table{
		"auth.login":     {Public: true},
		"auth.protected": {},

		"users.create": {Roles: []string{models.RoleAdmin}},
		"users.list":   {Roles: []string{models.RoleAdmin}},
		"users.update": {Roles: []string{models.RoleAdmin}},
		"users.delete": {Roles: []string{models.RoleAdmin}},

		"habitats.list":   {Public: true},
		"habitats.detail": {Public: true},
		"habitats.create": {Roles: []string{models.RoleAdmin}},
		"habitats.update": {Roles: []string{models.RoleAdmin}},
		"habitats.delete": {Roles: []string{models.RoleAdmin}},

		"commentaires.list":   {Roles: []string{models.RoleAdmin, models.RoleVeterinaire}},
		"commentaires.create": {Roles: []string{models.RoleVeterinaire}},

		"animaux.detail": {Public: true},
		"animaux.view":   {Public: true},
		"animaux.create": {Roles: []string{models.RoleAdmin}},
		"animaux.update": {Roles: []string{models.RoleAdmin}},
		"animaux.delete": {Roles: []string{models.RoleAdmin}},

		"services.list":   {Public: true},
		"services.create": {Roles: []string{models.RoleAdmin, models.RoleEmploye}},
		"services.update": {Roles: []string{models.RoleAdmin}},
		"services.delete": {Roles: []string{models.RoleAdmin}},

		"avis.list":    {Public: true},
		"avis.listAll": {Roles: []string{models.RoleAdmin, models.RoleEmploye}},
		"avis.create":  {Public: true},
		"avis.update":  {}, // any authenticated staff member may moderate

		"rapports.list":   {Roles: []string{models.RoleAdmin}},
		"rapports.create": {Roles: []string{models.RoleVeterinaire}},

		"consommations.list":   {}, // any authenticated staff member
		"consommations.create": {Roles: []string{models.RoleEmploye}},

		"dashboard.stats": {Roles: []string{models.RoleAdmin}},

		"contact.create": {Public: true},
	}
}
