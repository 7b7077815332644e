package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trivia/internal/question"
)

// ErrInputClosed is returned when the operator input ends mid-session.
var ErrInputClosed = errors.New("operator input closed")

// Engine runs the rounds of one Session against an Operator.
type Engine struct {
	session *Session
	op      Operator
	log     *zap.Logger

	state    State
	round    int
	current  question.Question
	inFlight bool
	outcome  Outcome
	player   string
	result   Result
}

// NewEngine binds a session to an operator. A nil logger discards logs.
func NewEngine(session *Session, op Operator, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		session: session,
		op:      op,
		log:     log,
		state:   AwaitingStart,
		round:   1,
	}
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Play runs rounds until they are used up or the bank runs out. Every scored
// round is already persisted; after the last one both stores are committed
// once more. Exhaustion, closed input, cancellation and errors return without
// writing, so a question discarded by a trailing skip stays in the bank file.
//
// ctx is only checked between rounds; a blocked read is not interrupted.
func (e *Engine) Play(ctx context.Context) (Result, error) {
	var loopErr error
	for !e.state.Terminal() {
		if e.state == AwaitingStart {
			if err := ctx.Err(); err != nil {
				loopErr = err
				break
			}
		}
		next, err := e.step()
		if err != nil {
			loopErr = err
			break
		}
		if next != e.state {
			e.log.Debug("state transition",
				zap.Int("round", e.round),
				zap.Stringer("from", e.state),
				zap.Stringer("to", next),
			)
		}
		e.state = next
	}

	e.releaseInFlight()
	var commitErr error
	if e.state == Done {
		commitErr = e.session.Commit()
		if commitErr != nil {
			e.log.Error("final commit failed", zap.Error(commitErr))
		}
	}
	e.log.Info("session finished",
		zap.Int("scored", e.result.Scored),
		zap.Int("skipped", e.result.Skipped),
		zap.Bool("exhausted", e.result.Exhausted),
		zap.Stringer("state", e.state),
	)
	return e.result, errors.Join(loopErr, commitErr)
}

func (e *Engine) step() (State, error) {
	switch e.state {
	case AwaitingStart:
		return e.awaitStart()
	case Presenting:
		return e.present()
	case AwaitingOutcome:
		return e.awaitOutcome()
	case AwaitingAttribution:
		return e.awaitAttribution()
	case Scored:
		return e.score()
	default:
		return e.state, fmt.Errorf("no transition from state %s", e.state)
	}
}

func (e *Engine) awaitStart() (State, error) {
	e.op.Print(msgPressToStart)
	if _, err := e.readLine(); err != nil {
		return e.state, err
	}
	if clearer, ok := e.op.(ScreenClearer); ok {
		clearer.ClearScreen()
	}
	if e.session.Questions.Remaining() == 0 {
		e.op.Print(msgOutOfQuestions)
		e.result.Exhausted = true
		e.log.Info("question bank exhausted", zap.Int("round", e.round))
		return Exhausted, nil
	}
	return Presenting, nil
}

func (e *Engine) present() (State, error) {
	e.current = e.session.Questions.DrawRandom()
	e.inFlight = true
	e.op.Print(fmt.Sprintf(msgRoundQuestion, e.round, e.current.Text))
	if _, err := e.readLine(); err != nil {
		return e.state, err
	}
	return AwaitingOutcome, nil
}

func (e *Engine) awaitOutcome() (State, error) {
	e.op.Print(fmt.Sprintf(msgAnswerOutcome, e.current.Answer))
	for {
		line, err := e.readLine()
		if err != nil {
			return e.state, err
		}
		outcome, ok := parseOutcome(line)
		if !ok {
			e.op.Print(msgInvalidOutcome)
			continue
		}
		if outcome == Skip {
			e.skip()
			return AwaitingStart, nil
		}
		e.outcome = outcome
		return AwaitingAttribution, nil
	}
}

func (e *Engine) awaitAttribution() (State, error) {
	players := e.session.Players()
	if len(players) == 1 {
		e.player = players[0]
		return Scored, nil
	}
	entries := make([]string, 0, len(players))
	for i, name := range players {
		entries = append(entries, fmt.Sprintf(msgMenuEntry, i+1, name))
	}
	e.op.Print(fmt.Sprintf(msgAttributionMenu, strings.Join(entries, "\n")))
	for {
		line, err := e.readLine()
		if err != nil {
			return e.state, err
		}
		index, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || index < 1 || index > len(players) {
			e.op.Print(msgInvalidPlayer)
			continue
		}
		e.player = players[index-1]
		return Scored, nil
	}
}

func (e *Engine) score() (State, error) {
	delta := e.session.Delta(e.outcome)
	if err := e.session.Board.AddScore(e.player, delta); err != nil {
		return e.state, fmt.Errorf("round %d: %w", e.round, err)
	}
	e.session.Questions.MarkUsed(e.current)
	e.inFlight = false

	e.result.Scored++
	if e.outcome == Correct {
		e.result.Correct++
	} else {
		e.result.Incorrect++
	}
	e.log.Info("round scored",
		zap.Int("round", e.round),
		zap.String("player", e.player),
		zap.Int32("delta", delta),
		zap.Bool("correct", e.outcome == Correct),
	)

	if err := e.session.Commit(); err != nil {
		return e.state, err
	}

	e.round++
	if e.round > e.session.Rounds {
		return Done, nil
	}
	return AwaitingStart, nil
}

// skip abandons the current round; the round number does not advance.
func (e *Engine) skip() {
	e.result.Skipped++
	e.inFlight = false
	switch e.session.SkipPolicy {
	case SkipReturn:
		e.session.Questions.ReturnUnused(e.current)
	default:
		e.session.Skipped = append(e.session.Skipped, e.current)
	}
	e.log.Info("round skipped", zap.Int("round", e.round), zap.String("question", e.current.Text))
}

// releaseInFlight returns a drawn but unjudged question to the unused pool.
func (e *Engine) releaseInFlight() {
	if !e.inFlight {
		return
	}
	e.session.Questions.ReturnUnused(e.current)
	e.inFlight = false
}

func (e *Engine) readLine() (string, error) {
	line, err := e.op.ReadLine()
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) {
		if line != "" {
			return line, nil
		}
		return "", ErrInputClosed
	}
	return "", fmt.Errorf("read operator input: %w", err)
}

func parseOutcome(line string) (Outcome, bool) {
	switch strings.TrimSpace(line) {
	case "", "y":
		return Correct, true
	case "n":
		return Incorrect, true
	case "s":
		return Skip, true
	default:
		return Correct, false
	}
}
