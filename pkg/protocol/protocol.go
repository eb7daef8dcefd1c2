package protocol

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ChizhovVadim/GobangGo/pkg/common"
)

type Engine interface {
	Clear()
	Configure(mySide common.Cell) error
	RecordOpponentMove(m common.Move) bool
	ChooseMove(ctx context.Context, budget time.Duration) (common.Move, bool)
}

// Protocol speaks the START/PLACE/TURN/END line protocol.
type Protocol struct {
	engine    Engine
	budget    time.Duration
	out       *bufio.Writer
	finished  bool
	writeErr  error
	timeSpent time.Duration
	turns     int
}

func New(engine Engine, budget time.Duration, out io.Writer) *Protocol {
	return &Protocol{
		engine: engine,
		budget: budget,
		out:    bufio.NewWriter(out),
	}
}

func (p *Protocol) handle(ctx context.Context, commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	var h func(ctx context.Context, fields []string) error

	switch commandName {
	case "START":
		h = p.startCommand
	case "PLACE":
		h = p.placeCommand
	case "TURN":
		h = p.turnCommand
	case "END":
		h = p.endCommand
	}

	if h == nil {
		return errors.New("command not found")
	}

	return h(ctx, fields)
}

func (p *Protocol) startCommand(ctx context.Context, fields []string) error {
	if len(fields) < 1 {
		return errors.New("missing side")
	}
	var side, err = common.ParseSide(fields[0])
	if err != nil {
		return err
	}
	p.engine.Clear()
	if err = p.engine.Configure(side); err != nil {
		return err
	}
	p.timeSpent = 0
	p.turns = 0
	logrus.WithField("side", side).Debug("game started")
	p.reply("OK")
	return nil
}

func (p *Protocol) placeCommand(ctx context.Context, fields []string) error {
	var m, err = common.ParseMove(fields)
	if err != nil {
		return err
	}
	if !p.engine.RecordOpponentMove(m) {
		return fmt.Errorf("illegal move %v", m)
	}
	return nil
}

func (p *Protocol) turnCommand(ctx context.Context, fields []string) error {
	var start = time.Now()
	var m, ok = p.engine.ChooseMove(ctx, p.budget)
	var elapsed = time.Since(start)
	p.timeSpent += elapsed
	p.turns++
	logrus.WithFields(logrus.Fields{
		"move":  m,
		"time":  elapsed,
		"total": p.timeSpent,
		"turn":  p.turns,
	}).Debug("turn")
	if !ok {
		return errors.New("board is full")
	}
	p.reply(m.String())
	return nil
}

func (p *Protocol) endCommand(ctx context.Context, fields []string) error {
	var result = ""
	if len(fields) != 0 {
		result = fields[0]
	}
	logrus.WithFields(logrus.Fields{
		"result": result,
		"turns":  p.turns,
		"total":  p.timeSpent,
	}).Info("game over")
	p.finished = true
	return nil
}

func (p *Protocol) reply(s string) {
	if p.writeErr != nil {
		return
	}
	if _, err := p.out.WriteString(s + "\n"); err != nil {
		p.writeErr = err
		return
	}
	p.writeErr = p.out.Flush()
}
