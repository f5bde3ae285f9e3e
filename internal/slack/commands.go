package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdWho     CommandType = "who"
	CmdNext    CommandType = "next"
	CmdRestart CommandType = "restart"
	CmdAdd     CommandType = "add"
	CmdRemove  CommandType = "remove"
	CmdList    CommandType = "list"
	CmdStats   CommandType = "stats"
	CmdInit    CommandType = "init"
	CmdHelp    CommandType = "help"
)

// adminCommands change the roster or the rotation state.
var adminCommands = map[CommandType]bool{
	CmdNext:    true,
	CmdRestart: true,
	CmdAdd:     true,
	CmdRemove:  true,
	CmdInit:    true,
}

type Command struct {
	Type CommandType
	Args []string
}

// RequiresAdmin reports whether only the allow-listed admin may run the command.
func (c *Command) RequiresAdmin() bool {
	return adminCommands[c.Type]
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdWho}, nil
	}

	cmd := &Command{}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "who", "status", "current":
		cmd.Type = CmdWho
	case "next", "advance":
		cmd.Type = CmdNext
	case "restart", "reset":
		cmd.Type = CmdRestart
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "list", "ls":
		cmd.Type = CmdList
	case "stats":
		cmd.Type = CmdStats
	case "init", "reload":
		cmd.Type = CmdInit
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ExtractUserID turns a mention like <@U123|alice> into U123.
func ExtractUserID(mention string) string {
	userID := strings.TrimSpace(mention)
	userID = strings.TrimPrefix(userID, "<@")
	userID = strings.TrimSuffix(userID, ">")
	if idx := strings.Index(userID, "|"); idx != -1 {
		userID = userID[:idx]
	}
	return userID
}

func GetHelpText() string {
	return `*Available Commands:*

*Duty:*
• ` + "`/duty who`" + ` - Show who is on cleaning duty
• ` + "`/duty next`" + ` - Hand the duty over to the next pair (admin)
• ` + "`/duty restart`" + ` - Start a new rotation loop (admin)

*Manage Members:*
• ` + "`/duty add @user GRADE [name] [kana]`" + ` - Add member to rotation (admin)
• ` + "`/duty remove @user`" + ` - Remove member from rotation (admin)
• ` + "`/duty init`" + ` - Reload the roster file (admin)
• ` + "`/duty list`" + ` - List all members

*Stats:*
• ` + "`/duty stats [@user]`" + ` - Show how often members served`
}
