package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameListCmd())
	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGameAbandonCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var symbol, strategy string
	var computerFirst bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game against the computer",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if symbol != "" {
				sym := strings.ToUpper(symbol)
				if sym != "X" && sym != "O" {
					return fmt.Errorf("symbol must be X or O")
				}
				// The flag names the human's symbol; the server wants the computer's
				if sym == "X" {
					req["computer_symbol"] = "O"
				} else {
					req["computer_symbol"] = "X"
				}
			}
			if computerFirst {
				req["computer_first"] = true
			}
			if strategy != "" {
				req["strategy"] = strategy
			}

			var result Game
			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "Symbol you play, X or O (default X)")
	cmd.Flags().BoolVar(&computerFirst, "computer-first", false, "Let the computer open the game")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Computer strategy: minimax, random")

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a game's board and state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Get("/api/v1/games/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your games",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameList
			if err := client.Get("/api/v1/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <id> <row> <col>",
		Short: "Play a move; the computer replies in the same call",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid row: %w", err)
			}

			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid col: %w", err)
			}

			req := map[string]int{"row": row, "col": col}
			var result MoveResult
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/moves", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameAbandonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <id>",
		Short: "Abandon a game in progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Game abandoned")
			return nil
		},
	}
}
