// Command progressctl inspects and edits saved progress outside the game.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	cfg "github.com/automoto/deadknight/config"
	"github.com/automoto/deadknight/progress"
	"github.com/automoto/deadknight/store"
	"github.com/spf13/cobra"
)

type options struct {
	backend string
	path    string
	appName string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "progressctl",
		Short:         "Inspect and edit saved game progress",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&opts.backend, "store", cfg.Storage.Backend, "store backend (gdata, sqlite)")
	root.PersistentFlags().StringVar(&opts.path, "path", cfg.Storage.Path, "sqlite database file")
	root.PersistentFlags().StringVar(&opts.appName, "app", cfg.Storage.AppName, "application name the save belongs to")

	root.AddCommand(
		&cobra.Command{
			Use:   "dump",
			Short: "Print the saved progress without changing it",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return dump(cmd, opts)
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Wipe all progress",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withManager(cmd, opts, func(m *progress.Manager) error { return m.ResetAll() })
			},
		},
		&cobra.Command{
			Use:   "unlock-all",
			Short: "Unlock every level",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withManager(cmd, opts, func(m *progress.Manager) error { return m.UnlockAll() })
			},
		},
		&cobra.Command{
			Use:   "set-level <level>",
			Short: "Set the current level",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				level, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("level: %w", err)
				}
				return withManager(cmd, opts, func(m *progress.Manager) error { return m.SetCurrentLevel(level) })
			},
		},
		&cobra.Command{
			Use:   "complete <level>",
			Short: "Mark a level completed and unlock the next one",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				level, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("level: %w", err)
				}
				return withManager(cmd, opts, func(m *progress.Manager) error { return m.CompleteLevel(level) })
			},
		},
		newCollectCmd(opts),
		&cobra.Command{
			Use:   "defeat <boss> <level>",
			Short: "Record a boss defeat",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				level, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("level: %w", err)
				}
				return withManager(cmd, opts, func(m *progress.Manager) error {
					return m.RegisterBossDefeatByName(args[0], level)
				})
			},
		},
		newSpawnCmd(opts),
	)
	return root
}

func newCollectCmd(opts *options) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "collect coin|chest <level>",
		Short: "Add collected coins or chests to a level",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("level: %w", err)
			}
			var collect func(*progress.Manager, int) error
			switch args[0] {
			case "coin", "coins":
				collect = (*progress.Manager).CollectCoin
			case "chest", "chests":
				collect = (*progress.Manager).CollectChest
			default:
				return fmt.Errorf("unknown collectible %q, want coin or chest", args[0])
			}
			return withManager(cmd, opts, func(m *progress.Manager) error {
				for i := 0; i < count; i++ {
					if err := collect(m, level); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "how many to add")
	return cmd
}

func newSpawnCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "spawn <x> <y>",
		Short: "Spawn the player at a position on the next level load",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("x: %w", err)
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("y: %w", err)
			}
			st, err := openStore(opts)
			if err != nil {
				return err
			}
			defer st.Close()

			store.SetBool(st, store.KeyUseCustomSpawn, true)
			st.SetFloat(store.KeySpawnPositionX, x)
			st.SetFloat(store.KeySpawnPositionY, y)
			if err := st.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Next level load spawns the player at (%g, %g)\n", x, y)
			return nil
		},
	}
}

func openStore(opts *options) (store.Store, error) {
	return store.Open(store.Config{Backend: opts.backend, AppName: opts.appName, Path: opts.path})
}

// withManager opens the save, applies fn, and prints the resulting state.
func withManager(cmd *cobra.Command, opts *options, fn func(*progress.Manager) error) error {
	st, m, err := openManager(opts, progress.Options{MirrorLegacyKeys: cfg.Storage.MirrorLegacyKeys})
	if err != nil {
		return err
	}
	defer st.Close()

	if err := fn(m); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), m.DebugDump())
	return nil
}

// dump prints the save as stored. Pending boss defeats are listed, not applied.
func dump(cmd *cobra.Command, opts *options) error {
	st, m, err := openManager(opts, progress.Options{ReadOnly: true})
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	fmt.Fprint(out, m.DebugDump())
	for _, b := range progress.AllBossTypes {
		key := store.PendingDefeatKey(b.String())
		if st.HasKey(key) {
			fmt.Fprintf(out, "Pending %s defeat on level %d (applied on next launch)\n", b, st.GetInt(key, -1))
		}
	}
	return nil
}

func openManager(opts *options, mopts progress.Options) (store.Store, *progress.Manager, error) {
	levels, err := cfg.BuildLevelTable(cfg.Levels)
	if err != nil {
		return nil, nil, err
	}
	st, err := openStore(opts)
	if err != nil {
		return nil, nil, err
	}
	m := progress.NewManager(st, levels, mopts)
	if err := m.Init(); err != nil {
		st.Close()
		return nil, nil, err
	}
	return st, m, nil
}
