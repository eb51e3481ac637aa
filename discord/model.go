package discord

type optionType uint

const (
	SubCommandOption      optionType = 1
	SubCommandGroupOption optionType = 2
	StringOption          optionType = 3
	IntegerOption         optionType = 4
	BooleanOption         optionType = 5
	UserOption            optionType = 6
	ChannelOption         optionType = 7
	RoleOption            optionType = 8
)

type Command struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name,omitempty"`
	Description string          `json:"description,omitempty"`
	Options     []CommandOption `json:"options,omitempty"`
}

func NewCommand(name, description string) Command {
	return Command{
		Name:        name,
		Description: description,
	}
}

func (c Command) AddOption(option CommandOption) Command {
	c.Options = append(c.Options, option)
	return c
}

type CommandOption struct {
	Name        string     `json:"name,omitempty"`
	Description string     `json:"description,omitempty"`
	Type        optionType `json:"type,omitempty"`
	Required    bool       `json:"required,omitempty"`
}

func NewOption(optType optionType, name, description string, required bool) CommandOption {
	return CommandOption{
		Type:        optType,
		Name:        name,
		Description: description,
		Required:    required,
	}
}
