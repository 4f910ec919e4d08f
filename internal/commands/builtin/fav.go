package builtin

import (
	"fmt"

	"calchub/internal/catalog"
	"calchub/internal/commands"
	"calchub/internal/services"
	"calchub/pkg/calctypes"
)

// FavCommand implements the \fav command, toggling a calculator's star.
type FavCommand struct{}

// Name returns the command name "fav" for registration and lookup.
func (c *FavCommand) Name() string {
	return "fav"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *FavCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the fav command does.
func (c *FavCommand) Description() string {
	return "Star or unstar a calculator"
}

// Usage returns the syntax and usage examples for the fav command.
func (c *FavCommand) Usage() string {
	return "\\fav [calculator]"
}

// HelpInfo returns structured help information for the fav command.
func (c *FavCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\fav math-fraction", Description: "Toggle the fraction calculator"},
			{Command: "\\fav", Description: "Toggle the open calculator"},
		},
		Notes: []string{"Favorites are listed in catalog order"},
	}
}

// Execute toggles the favorite and reports the new state.
func (c *FavCommand) Execute(_ map[string]string, input string) error {
	def, err := currentOrResolve(input)
	if err != nil {
		return err
	}
	favorites, err := service[*services.FavoritesService]("favorites")
	if err != nil {
		return err
	}
	added, err := favorites.Toggle(def.ID)
	if err != nil {
		return err
	}
	if added {
		printer().Success(fmt.Sprintf("★ %s added to favorites", def.Name))
	} else {
		printer().Success(fmt.Sprintf("%s removed from favorites", def.Name))
	}
	return nil
}

// FavoritesCommand implements the \favorites command.
type FavoritesCommand struct{}

// Name returns the command name "favorites" for registration and lookup.
func (c *FavoritesCommand) Name() string {
	return "favorites"
}

// ParseMode returns ParseModeKeyValue for standard argument parsing.
func (c *FavoritesCommand) ParseMode() calctypes.ParseMode {
	return calctypes.ParseModeKeyValue
}

// Description returns a brief description of what the favorites command does.
func (c *FavoritesCommand) Description() string {
	return "List starred calculators"
}

// Usage returns the syntax and usage examples for the favorites command.
func (c *FavoritesCommand) Usage() string {
	return "\\favorites"
}

// HelpInfo returns structured help information for the favorites command.
func (c *FavoritesCommand) HelpInfo() calctypes.HelpInfo {
	return calctypes.HelpInfo{
		Command:     c.Name(),
		Description: c.Description(),
		Usage:       c.Usage(),
		ParseMode:   c.ParseMode(),
		Examples: []calctypes.HelpExample{
			{Command: "\\favorites", Description: "Starred calculators in catalog order"},
		},
	}
}

// Execute prints the favorites that still exist in the catalog.
func (c *FavoritesCommand) Execute(_ map[string]string, _ string) error {
	defs, err := favoriteDefinitions()
	if err != nil {
		return err
	}
	if len(defs) == 0 {
		printer().Info("No favorites yet. Use \\fav to star a calculator")
		return nil
	}
	for _, def := range defs {
		printer().Println(calculatorLine(def, true))
	}
	return nil
}

func favoriteDefinitions() ([]*calctypes.Definition, error) {
	cat, err := service[*services.CatalogService]("catalog")
	if err != nil {
		return nil, err
	}
	favorites, err := service[*services.FavoritesService]("favorites")
	if err != nil {
		return nil, err
	}
	return catalog.Favorites(cat.All(), favorites.List()), nil
}

func init() {
	if err := commands.GlobalRegistry.Register(&FavCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register fav command: %v", err))
	}
	if err := commands.GlobalRegistry.Register(&FavoritesCommand{}); err != nil {
		panic(fmt.Sprintf("failed to register favorites command: %v", err))
	}
}
