// Command console runs an interactive shell for re-rendering a scene with
// changed parameters without restarting the process.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ergochat/readline"

	"github.com/arnovandash/go-raytracer/pkg/loaders"
	"github.com/arnovandash/go-raytracer/pkg/renderer"
	"github.com/arnovandash/go-raytracer/pkg/scene"
)

type Command struct {
	// Symbol is the canonical name of the command.
	// It should include the leading ":".
	Symbol       string
	Aliases      []string
	ExpectedArgs []string // For generating help.
	HelpText     string
	Run          func(*State) error
}

type State struct {
	args     []string
	scene    *scene.Scene
	path     string
	commands []*Command
}

// errQuit is a signal to the main loop to quit.
var errQuit = errors.New("quit")

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:       "raytracer> ",
		HistoryFile:  readlineHistoryFilePath(),
		HistoryLimit: 10000,
	})
	if err != nil {
		log.Fatalf("readline init error: %v", err)
	}

	var commands []*Command
	commandLookup := make(map[string]*Command)

	registerCommand := func(command *Command) {
		mustAddToLookup := func(symbol string) {
			if commandLookup[symbol] != nil {
				log.Fatalf("duplicate command: %v vs %v", command, commandLookup[symbol])
			}
			commandLookup[symbol] = command
		}
		commands = append(commands, command)
		mustAddToLookup(command.Symbol)
		for _, alias := range command.Aliases {
			mustAddToLookup(alias)
		}
	}

	registerCommand(&Command{
		Symbol:       ":load",
		Aliases:      []string{":l"},
		ExpectedArgs: []string{"<filename>"},
		HelpText:     "Load a scene file",
		Run: func(st *State) error {
			if len(st.args) < 1 {
				return errors.New("usage: :load <filename>")
			}
			sceneObj, err := loaders.LoadScene(st.args[0])
			if err != nil {
				return err
			}
			st.scene = sceneObj
			st.path = st.args[0]
			fmt.Printf("loaded %s (%dx%d, depth=%d, super=%d)\n",
				st.args[0], sceneObj.Width, sceneObj.Height, sceneObj.MaxDepth, sceneObj.Super)
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":depth",
		ExpectedArgs: []string{"<n>"},
		HelpText:     "Set the recursion depth for the loaded scene",
		Run: func(st *State) error {
			n, err := requireIntArg(st, "depth")
			if err != nil {
				return err
			}
			st.scene.MaxDepth = n
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":super",
		ExpectedArgs: []string{"<n>"},
		HelpText:     "Set the samples-per-pixel for the loaded scene",
		Run: func(st *State) error {
			n, err := requireIntArg(st, "super")
			if err != nil {
				return err
			}
			st.scene.Super = n
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:       ":render",
		ExpectedArgs: []string{"<out>"},
		HelpText:     "Render the loaded scene to an image file",
		Run: func(st *State) error {
			if st.scene == nil {
				return errors.New("no scene loaded; use :load first")
			}
			if len(st.args) < 1 {
				return errors.New("usage: :render <out>")
			}
			pipeline := renderer.NewPipeline(st.scene, renderer.NewDefaultLogger())
			buf := pipeline.Render()
			if err := loaders.SaveImage(st.args[0], buf, st.scene.Width, st.scene.Height); err != nil {
				return err
			}
			fmt.Printf("saved %s\n", st.args[0])
			return nil
		},
	})
	registerCommand(&Command{
		Symbol:   ":help",
		Aliases:  []string{":h"},
		HelpText: "Prints this help text",
		Run:      showHelp,
	})
	registerCommand(&Command{
		Symbol:   ":quit",
		Aliases:  []string{":q"},
		HelpText: "Exit the shell",
		Run: func(st *State) error {
			return errQuit
		},
	})

	state := &State{commands: commands}

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
				return
			}
			log.Fatalf("readline error: %v", err)
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] != ':' {
			fmt.Printf("unrecognized input (commands start with ':', try :help)\n")
			continue
		}

		args := parseCommandArgs(line)
		cmd := commandLookup[args[0]]
		if cmd == nil {
			fmt.Printf("Unknown command: %v\n", args[0])
			continue
		}

		state.args = args[1:]
		err = cmd.Run(state)
		if errors.Is(err, errQuit) {
			return
		}
		if err != nil {
			fmt.Printf("command error: %v\n", err)
		}
	}
}

func requireIntArg(st *State, name string) (int, error) {
	if st.scene == nil {
		return 0, errors.New("no scene loaded; use :load first")
	}
	if len(st.args) < 1 {
		return 0, fmt.Errorf("usage: :%s <n>", name)
	}
	n, err := strconv.Atoi(st.args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, st.args[0], err)
	}
	return n, nil
}

func showHelp(st *State) error {
	usageHelp := make([]string, len(st.commands))
	maxLen := 0
	for i, command := range st.commands {
		parts := []string{command.Symbol}
		parts = append(parts, command.Aliases...)
		parts = append(parts, command.ExpectedArgs...)
		usageHelp[i] = strings.Join(parts, " ")
		maxLen = max(maxLen, len(usageHelp[i]))
	}
	fmt.Printf("Commands:\n")
	for i, command := range st.commands {
		fmt.Printf("  %-*s : %s\n", maxLen, usageHelp[i], command.HelpText)
	}
	return nil
}

func readlineHistoryFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("user home dir error: %v\n", err)
		return ""
	}
	return filepath.Join(home, ".raytracer_console_history")
}

func parseCommandArgs(line string) []string {
	var args []string
	var start int
	for i := range line {
		curr := line[i]
		if strings.IndexByte(" \t\n\r", curr) != -1 {
			if start < i {
				args = append(args, line[start:i])
			}
			start = i + 1
		}
	}
	if start < len(line) {
		args = append(args, line[start:])
	}
	return args
}
