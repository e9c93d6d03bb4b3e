package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/kestrelworks/kestrel/internal/kestrel/agent"
	"github.com/kestrelworks/kestrel/internal/pkg/tools"
	"github.com/kestrelworks/kestrel/pkg/logger"
)

// ANSI color helpers using raw escape codes — no OSC queries, no termenv auto-detect.
var (
	colorReset      = "\033[0m"
	colorBold       = "\033[1m"
	colorDim        = "\033[2m"
	colorOrangeANSI = "\033[38;5;208m"
	colorBlueANSI   = "\033[38;5;39m"
	colorPinkANSI   = "\033[38;5;212m"
	colorGrayANSI   = "\033[38;5;241m"
	colorRedANSI    = "\033[38;5;196m"
)

func getTermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// printWelcomeBanner outputs the welcome banner once at startup.
func printWelcomeBanner(modelName, sessionID string, toolNames []string) {
	w := getTermWidth()

	sep := colorOrangeANSI + strings.Repeat("-", w) + colorReset
	fmt.Println(sep)
	fmt.Printf("%s%s Kestrel Chat %s\n", colorBold, colorOrangeANSI, colorReset)
	fmt.Println()
	fmt.Printf("  Model:   %s\n", modelName)
	fmt.Printf("  Session: %s\n", sessionID)
	fmt.Printf("  Tools:   %s\n", strings.Join(toolNames, ", "))
	fmt.Println()
	fmt.Printf("%sTips:%s\n", colorOrangeANSI+colorBold, colorReset)
	fmt.Println("  Type a message and press Enter to send")
	fmt.Println("  /clear  - reset conversation")
	fmt.Println("  /quit   - exit")
	fmt.Println("  Ctrl+C  - exit")
	fmt.Println(sep)
	fmt.Println()
}

// printSeparator prints a dim horizontal rule.
func printSeparator() {
	w := getTermWidth()
	n := w - 2
	if n < 20 {
		n = 20
	}
	fmt.Printf("%s%s%s\n", colorGrayANSI, strings.Repeat("-", n), colorReset)
}

// printUserMessage displays the user's message.
func printUserMessage(msg string) {
	printSeparator()
	fmt.Printf("%s%syou%s\n", colorBold, colorBlueANSI, colorReset)
	fmt.Printf("%s%s%s\n", colorBlueANSI, msg, colorReset)
}

// printAssistantLabel outputs the assistant name label.
func printAssistantLabel() {
	printSeparator()
	fmt.Printf("%s%skestrel%s\n", colorBold, colorPinkANSI, colorReset)
}

// printToolCall surfaces a tool invocation as it happens.
func printToolCall(name, arguments string) {
	fmt.Printf("\r\033[K%s⚙ %s(%s)%s\n", colorGrayANSI, name, arguments, colorReset)
}

// printError outputs an error message.
func printError(msg string) {
	fmt.Printf("%s%sError: %s%s\n", colorBold, colorRedANSI, msg, colorReset)
}

// renderMarkdownToTerminal renders markdown content for terminal display.
func renderMarkdownToTerminal(content string, width int) string {
	if width <= 0 {
		width = 76
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithColorProfile(termenv.ANSI256),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}

// readLine reads a line of input from the user with a prompt.
// It handles Ctrl+C / Ctrl+D gracefully.
func readLine(reader *bufio.Reader, prompt string) (string, bool) {
	fmt.Print(prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		// EOF or error (e.g. Ctrl+D)
		return strings.TrimRight(line, "\n"), false
	}
	return strings.TrimRight(line, "\n"), true
}

func isExitWord(input string) bool {
	switch strings.ToLower(input) {
	case "quit", "exit", "bye", "q", "goodbye", "/quit", "/exit":
		return true
	}
	return false
}

// runTurn executes one agent turn and prints the rendered answer.
func runTurn(ctx context.Context, ag *agent.Agent, input string) {
	printAssistantLabel()
	fmt.Printf("%sThinking...%s", colorGrayANSI, colorReset)

	turn, err := ag.Run(ctx, input)

	fmt.Print("\r\033[K")
	if err != nil {
		printError(err.Error())
		fmt.Println()
		return
	}

	if turn.StepLimited {
		fmt.Printf("%s(step limit reached)%s\n", colorGrayANSI, colorReset)
	}
	fmt.Println(renderMarkdownToTerminal(turn.Answer, getTermWidth()-4))
	fmt.Println()
}

// runConsole starts the interactive chat loop using direct terminal output.
// This approach avoids alt-screen mode so that text can be freely selected and copied.
// onExit, when non-nil, runs before the process exits on SIGINT so remote
// connections are torn down even though deferred closers never fire.
func runConsole(ctx context.Context, ag *agent.Agent, modelName string, toolNames []string, onExit func()) error {
	// Handle Ctrl+C gracefully
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Printf("\n\n%sGoodbye!%s\n\n", colorDim, colorReset)
		if onExit != nil {
			onExit()
		}
		logger.FlushLog()
		os.Exit(0)
	}()

	sort.Strings(toolNames)
	printWelcomeBanner(modelName, ag.SessionID(), toolNames)

	reader := bufio.NewReader(os.Stdin)
	prompt := colorOrangeANSI + colorBold + "> " + colorReset

	for {
		input, ok := readLine(reader, prompt)
		if !ok {
			// EOF (Ctrl+D)
			fmt.Printf("\n%sGoodbye!%s\n\n", colorDim, colorReset)
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if isExitWord(input) {
			fmt.Printf("\n%sGoodbye!%s\n\n", colorDim, colorReset)
			return nil
		}
		if input == "/clear" {
			ag.Reset()
			fmt.Printf("%sConversation cleared.%s\n\n", colorGrayANSI, colorReset)
			continue
		}

		printUserMessage(input)
		runTurn(ctx, ag, input)
	}
}

// runScripted replays a fixed set of queries through the agent, printing
// each exchange the same way the interactive loop does.
func runScripted(ctx context.Context, ag *agent.Agent, queries []string) error {
	for _, q := range queries {
		printUserMessage(q)
		runTurn(ctx, ag, q)
	}
	return nil
}

// toolCheck is one direct tool invocation used by the --demo runs.
type toolCheck struct {
	Name      string
	Arguments string
}

// runToolChecks invokes tools straight against the registry, bypassing
// the model, and prints each result. No API key is needed.
func runToolChecks(ctx context.Context, reg *tools.Registry, checks []toolCheck) error {
	for _, c := range checks {
		printSeparator()
		fmt.Printf("%s%s%s(%s)%s\n", colorBold, colorBlueANSI, c.Name, c.Arguments, colorReset)
		fmt.Println(reg.Execute(ctx, c.Name, c.Arguments))
		fmt.Println()
	}
	return nil
}
