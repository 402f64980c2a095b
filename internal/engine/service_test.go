package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/tictactoe-go/internal/engine"
	"github.com/mcoot/tictactoe-go/internal/model"
	"github.com/mcoot/tictactoe-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	cache   *engine.Cache
	service *engine.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.cache = engine.NewCache()
	s.service = engine.New(s.cache, engine.DefaultConfig(), testutil.NopLogger())
}

// positionFrom builds a position from row strings using '.', 'C', 'H'
func positionFrom(toMove model.Mark, rows ...string) *model.Position {
	p := model.NewPosition(len(rows), toMove)
	for row, str := range rows {
		for col, ch := range str {
			switch ch {
			case 'C':
				p.Cells[row][col] = model.MarkComputer
			case 'H':
				p.Cells[row][col] = model.MarkHuman
			}
		}
	}
	return p
}

// Terminal scoring

func (s *ServiceSuite) TestScoreComputerWin() {
	p := positionFrom(model.MarkHuman,
		"CCC",
		"HH.",
		"...",
	)
	s.Equal(100, s.service.Score(p))
}

func (s *ServiceSuite) TestScoreHumanWin() {
	p := positionFrom(model.MarkComputer,
		"CC.",
		"HHH",
		"...",
	)
	s.Equal(-100, s.service.Score(p))
}

func (s *ServiceSuite) TestScoreDraw() {
	p := positionFrom(model.MarkComputer,
		"CHC",
		"HHC",
		"CCH",
	)
	s.Equal(0, s.service.Score(p))
}

// Minimax recursion

func (s *ServiceSuite) TestScoreEqualsMaxOverChildrenOnComputerTurn() {
	p := positionFrom(model.MarkComputer,
		"C.H",
		".C.",
		"H..",
	)

	want := s.service.Score(p.ChildBoards()[0])
	for _, child := range p.ChildBoards()[1:] {
		if score := s.service.Score(child); score > want {
			want = score
		}
	}
	s.Equal(want, s.service.Score(p))
}

func (s *ServiceSuite) TestScoreEqualsMinOverChildrenOnHumanTurn() {
	p := positionFrom(model.MarkHuman,
		"C.H",
		".C.",
		"H.C",
	)

	want := s.service.Score(p.ChildBoards()[0])
	for _, child := range p.ChildBoards()[1:] {
		if score := s.service.Score(child); score < want {
			want = score
		}
	}
	s.Equal(want, s.service.Score(p))
}

// Memoization

func (s *ServiceSuite) TestScoreIsIdempotentViaCache() {
	p := positionFrom(model.MarkComputer,
		"CH.",
		".C.",
		"..H",
	)

	first := s.service.Score(p)
	statsAfterFirst := s.cache.Stats()

	second := s.service.Score(p)
	statsAfterSecond := s.cache.Stats()

	s.Equal(first, second)
	// The second call must be answered from the cache: one more hit,
	// no new entries, no new misses.
	s.Equal(statsAfterFirst.Hits+1, statsAfterSecond.Hits)
	s.Equal(statsAfterFirst.Misses, statsAfterSecond.Misses)
	s.Equal(statsAfterFirst.Entries, statsAfterSecond.Entries)
}

func (s *ServiceSuite) TestCacheSharedAcrossBranches() {
	// Scoring the empty board visits every subtree; scoring any child
	// afterwards must be fully answered by cached entries.
	empty := model.NewPosition(3, model.MarkComputer)
	s.service.Score(empty)

	entriesBefore := s.cache.Stats().Entries
	child := empty.CloneWithMove(model.Cell{Row: 1, Col: 1}, model.MarkComputer)
	s.service.Score(child)
	s.Equal(entriesBefore, s.cache.Stats().Entries)
}

// Move selection

func (s *ServiceSuite) TestSelectBestMoveCompletesDiagonalWin() {
	p := positionFrom(model.MarkComputer,
		"C..",
		".C.",
		"HH.",
	)

	child, cell, ok := s.service.SelectBestMove(p)
	s.Require().True(ok)
	s.Equal(model.Cell{Row: 2, Col: 2}, cell)
	s.Equal(model.OutcomeComputerWins, child.Outcome())
	s.Equal(100, s.service.Score(child))
}

func (s *ServiceSuite) TestSelectBestMoveNoneWhenTerminal() {
	p := positionFrom(model.MarkComputer,
		"CCC",
		"HH.",
		"...",
	)

	_, _, ok := s.service.SelectBestMove(p)
	s.False(ok)
}

func (s *ServiceSuite) TestSelectBestMoveNoneOnHumanTurn() {
	p := positionFrom(model.MarkHuman,
		"C..",
		"...",
		"...",
	)

	_, _, ok := s.service.SelectBestMove(p)
	s.False(ok)
}

func (s *ServiceSuite) TestSelectBestMoveOpeningPlacesOneMark() {
	empty := model.NewPosition(3, model.MarkComputer)

	child, cell, ok := s.service.SelectBestMove(empty)
	s.Require().True(ok)
	s.Equal(8, child.EmptyCount())
	s.Equal(model.MarkComputer, child.Get(cell))
	s.Equal(model.MarkHuman, child.ToMove)
}

func (s *ServiceSuite) TestSelectBestMoveIsDeterministic() {
	p := positionFrom(model.MarkComputer,
		"H..",
		"...",
		"...",
	)

	_, first, ok := s.service.SelectBestMove(p)
	s.Require().True(ok)

	// A fresh service with a cold cache must pick the same cell
	fresh := engine.New(engine.NewCache(), engine.DefaultConfig(), testutil.NopLogger())
	_, again, ok := fresh.SelectBestMove(p)
	s.Require().True(ok)
	s.Equal(first, again)
}

// bestHumanReply mirrors the engine's tie-break for the minimizing
// side: the first child in row-major order matching the parent score.
func (s *ServiceSuite) bestHumanReply(p *model.Position) *model.Position {
	target := s.service.Score(p)
	for _, child := range p.ChildBoards() {
		if s.service.Score(child) == target {
			return child
		}
	}
	return nil
}

func (s *ServiceSuite) TestHumanForcedReply() {
	// The human ("O") to move can win the middle row outright; full
	// depth search must pick that cell over blocking the top row.
	p := positionFrom(model.MarkHuman,
		"CC.",
		"HH.",
		"...",
	)
	s.Equal(model.OutcomeOngoing, p.Outcome())

	reply := s.bestHumanReply(p)
	s.Require().NotNil(reply)
	s.Equal(model.MarkHuman, reply.Get(model.Cell{Row: 1, Col: 2}))
	s.Equal(model.OutcomeHumanWins, reply.Outcome())
}

func (s *ServiceSuite) TestOptimalPlayFromEmptyBoardIsDraw() {
	p := model.NewPosition(3, model.MarkComputer)

	for p.Outcome() == model.OutcomeOngoing {
		if p.ToMove == model.MarkComputer {
			child, _, ok := s.service.SelectBestMove(p)
			s.Require().True(ok)
			p = child
		} else {
			p = s.bestHumanReply(p)
			s.Require().NotNil(p)
		}
	}

	s.Equal(model.OutcomeDraw, p.Outcome())
	s.Equal(0, s.service.Score(p))
}

// Forecasting

func (s *ServiceSuite) TestPredict() {
	won := positionFrom(model.MarkHuman,
		"CCC",
		"HH.",
		"...",
	)
	s.Equal(model.ForecastComputerWin, s.service.Predict(won))

	lost := positionFrom(model.MarkComputer,
		"CC.",
		"HHH",
		"...",
	)
	s.Equal(model.ForecastHumanWin, s.service.Predict(lost))

	// Perfect play from the empty board is a draw
	s.Equal(model.ForecastDraw, s.service.Predict(model.NewPosition(3, model.MarkComputer)))

	// A position the computer is bound to win scores at the threshold
	winning := positionFrom(model.MarkComputer,
		"C.C",
		".H.",
		"H.C",
	)
	s.Equal(model.ForecastComputerWin, s.service.Predict(winning))
}
