package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cardgame24/engine"

	"github.com/rs/zerolog/log"
)

// Player runs rounds of the game over a line-based terminal.
type Player struct {
	Engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
	round  engine.Round
}

// NewPlayer creates a new Player reading commands from in and writing to out.
func NewPlayer(e *engine.Engine, in io.Reader, out io.Writer) *Player {
	return &Player{
		Engine: e,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Round returns the round currently on the table.
func (p *Player) Round() engine.Round {
	return p.round
}

// Play deals the first round and handles commands until quit or end of input.
func (p *Player) Play() error {
	p.printHelp()
	p.Refresh()

	for {
		p.printf("> ")
		if !p.in.Scan() {
			p.printf("\n")
			return p.in.Err()
		}

		line := strings.TrimSpace(p.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit", "exit":
			log.Debug().Msg("player quit")
			return nil
		case "r", "refresh":
			p.Refresh()
		case "s", "solve":
			p.printf("%s\n", p.FindSolution())
		case "h", "help", "?":
			p.printHelp()
		default:
			p.printf("%s\n", p.Verify(line))
		}
	}
}

// Refresh replaces the cards on the table with a new deal.
func (p *Player) Refresh() {
	p.round = p.Engine.Deal()
	for i, card := range p.round.Cards {
		p.printf("card %d: %-22s (%d)\n", i+1, card.ImageName(), card.Value())
	}
	p.printf("hand: %v\n", p.round.Hand)
}

// Verify checks an expression against the current hand and returns the message for it.
func (p *Player) Verify(expression string) string {
	verdict, err := p.Engine.Check(p.round.Hand, expression)
	if err != nil {
		log.Debug().Err(err).Msgf("rejected %q", expression)
	}
	return p.Engine.Message(verdict, err)
}

// FindSolution returns a solving expression for the current hand or the no-solution message.
func (p *Player) FindSolution() string {
	return p.Engine.FindSolution(p.round.Hand)
}

func (p *Player) printHelp() {
	p.printf("Make %g from the four cards using + - * / and parentheses.\n", p.Engine.Solver().Target())
	p.printf("Type an expression to verify it, 's' to find a solution, 'r' to refresh the cards, 'q' to quit.\n")
}

func (p *Player) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
