// Package dispatch maps menu selections onto data access calls and turns
// their results and errors into outcomes the presentation layer can show.
package dispatch

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/astrolab/internal/models"
)

// Category is the first level of the menu
type Category int

const (
	CategoryCreate Category = iota + 1
	CategoryRead
	CategoryUpdate
	CategoryDelete
	CategoryGenerate
	CategorySearch
	CategoryHelp
	CategoryQuit
)

// Categories returns every category in menu order
func Categories() []Category {
	return []Category{
		CategoryCreate, CategoryRead, CategoryUpdate, CategoryDelete,
		CategoryGenerate, CategorySearch, CategoryHelp, CategoryQuit,
	}
}

var categoryNames = map[Category]string{
	CategoryCreate:   "create",
	CategoryRead:     "read",
	CategoryUpdate:   "update",
	CategoryDelete:   "delete",
	CategoryGenerate: "generate",
	CategorySearch:   "search",
	CategoryHelp:     "help",
	CategoryQuit:     "quit",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Command is one (category, action) pair of the menu
type Command int

const (
	CmdCreateLaboratory Command = iota + 1
	CmdCreateResearcher
	CmdCreateObjectType
	CmdCreateObject

	CmdReadLaboratories
	CmdReadResearchers
	CmdReadObjectTypes
	CmdReadObjects

	CmdUpdateLaboratory
	CmdUpdateResearcher
	CmdUpdateObjectType
	CmdUpdateObject

	CmdDeleteLaboratory
	CmdDeleteResearcher
	CmdDeleteObjectType
	CmdDeleteObject

	CmdGenerateLaboratories
	CmdGenerateResearchers
	CmdGenerateObjectTypes
	CmdGenerateObjects

	CmdSearchResearchers
	CmdSearchObjects
	CmdSearchLabs

	CmdHelp
	CmdQuit
)

type commandInfo struct {
	category    Category
	kind        models.Kind
	name        string
	description string
}

// commands is the static command table, in menu order
var commands = map[Command]commandInfo{
	CmdCreateLaboratory: {CategoryCreate, models.KindLaboratory, "laboratory", "Add a laboratory"},
	CmdCreateResearcher: {CategoryCreate, models.KindResearcher, "researcher", "Add a researcher to a laboratory"},
	CmdCreateObjectType: {CategoryCreate, models.KindObjectType, "object_type", "Add an object type"},
	CmdCreateObject:     {CategoryCreate, models.KindObject, "object", "Add an object observed by a laboratory"},

	CmdReadLaboratories: {CategoryRead, models.KindLaboratory, "laboratories", "List laboratories"},
	CmdReadResearchers:  {CategoryRead, models.KindResearcher, "researchers", "List researchers with their laboratory"},
	CmdReadObjectTypes:  {CategoryRead, models.KindObjectType, "object_types", "List object types"},
	CmdReadObjects:      {CategoryRead, models.KindObject, "objects", "List objects with laboratory and type"},

	CmdUpdateLaboratory: {CategoryUpdate, models.KindLaboratory, "laboratory", "Change one field of a laboratory"},
	CmdUpdateResearcher: {CategoryUpdate, models.KindResearcher, "researcher", "Change one field of a researcher"},
	CmdUpdateObjectType: {CategoryUpdate, models.KindObjectType, "object_type", "Change one field of an object type"},
	CmdUpdateObject:     {CategoryUpdate, models.KindObject, "object", "Change one field of an object"},

	CmdDeleteLaboratory: {CategoryDelete, models.KindLaboratory, "laboratory", "Delete a laboratory by id"},
	CmdDeleteResearcher: {CategoryDelete, models.KindResearcher, "researcher", "Delete a researcher by id"},
	CmdDeleteObjectType: {CategoryDelete, models.KindObjectType, "object_type", "Delete an object type by id"},
	CmdDeleteObject:     {CategoryDelete, models.KindObject, "object", "Delete an object by id"},

	CmdGenerateLaboratories: {CategoryGenerate, models.KindLaboratory, "generate_labs", "Insert random XXX-Y laboratories"},
	CmdGenerateResearchers:  {CategoryGenerate, models.KindResearcher, "generate_researchers", "Insert random researchers into existing laboratories"},
	CmdGenerateObjectTypes:  {CategoryGenerate, models.KindObjectType, "generate_object_types", "Insert random object types"},
	CmdGenerateObjects:      {CategoryGenerate, models.KindObject, "generate_objects", "Insert random objects for existing laboratories and types"},

	CmdSearchResearchers: {CategorySearch, models.KindResearcher, "search_researchers", "Researchers by laboratory name and level"},
	CmdSearchObjects:     {CategorySearch, models.KindObject, "search_objects", "Objects by laboratory name and type"},
	CmdSearchLabs:        {CategorySearch, models.KindLaboratory, "search_labs", "Laboratories by researcher, level and object"},

	CmdHelp: {CategoryHelp, 0, "help", "Show this help"},
	CmdQuit: {CategoryQuit, 0, "quit", "Close the database and exit"},
}

// Commands returns every command in menu order
func Commands() []Command {
	out := make([]Command, 0, len(commands))
	for cmd := CmdCreateLaboratory; cmd <= CmdQuit; cmd++ {
		out = append(out, cmd)
	}
	return out
}

// ActionsFor returns the commands of a category in menu order
func ActionsFor(category Category) []Command {
	var out []Command
	for _, cmd := range Commands() {
		if cmd.Category() == category {
			out = append(out, cmd)
		}
	}
	return out
}

// ParseCommand finds the command named action inside category
func ParseCommand(category Category, action string) (Command, error) {
	action = strings.ToLower(strings.TrimSpace(action))
	for _, cmd := range ActionsFor(category) {
		if cmd.Name() == action {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("unknown %s action %q", category, action)
}

// CommandFor finds the command of category working on kind
func CommandFor(category Category, kind models.Kind) (Command, error) {
	for _, cmd := range ActionsFor(category) {
		if cmd.Kind() == kind {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: no %s command for %s", models.ErrUnknownEntity, category, kind)
}

// ParseCategory maps a category name onto its value
func ParseCategory(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Valid reports whether cmd is in the command table
func (c Command) Valid() bool {
	_, ok := commands[c]
	return ok
}

// Category returns the menu category of the command
func (c Command) Category() Category { return commands[c].category }

// Kind returns the entity kind the command works on. Help and quit have none.
func (c Command) Kind() models.Kind { return commands[c].kind }

// Name returns the action name shown in the menu
func (c Command) Name() string { return commands[c].name }

// Description returns a one line summary for menus and help
func (c Command) Description() string { return commands[c].description }

func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("command(%d)", int(c))
	}
	return c.Category().String() + "/" + c.Name()
}

// SearchFilters names the filter arguments of a search command in order.
// It returns nil for other commands.
func (c Command) SearchFilters() []string {
	switch c {
	case CmdSearchResearchers:
		return []string{"lab_name", "level"}
	case CmdSearchObjects:
		return []string{"lab_name", "type"}
	case CmdSearchLabs:
		return []string{"full_name", "level", "object_name"}
	}
	return nil
}
