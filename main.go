package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lmittmann/tint"
	"github.com/oi-archive/samples/plugin/atcoder"
	"github.com/oi-archive/samples/plugin/public"
	"github.com/spf13/cobra"
)

const prompt = "Input contest name[ex. abc390, arc195] > "

var cfg public.Config

var rootCmd = &cobra.Command{
	Use:           "samples",
	Short:         "samples downloads the sample cases of an AtCoder contest into contest.json.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runUpdate(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), ".")
	},
}

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Prints the problem urls of a contest without downloading them.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTasks(cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}

func readKind(in io.Reader, out io.Writer) (atcoder.Kind, error) {
	color.New(color.FgCyan).Fprint(out, prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return atcoder.Kind{}, err
	}
	return atcoder.ParseKind(strings.TrimSpace(line))
}

func runUpdate(ctx context.Context, cfg public.Config, in io.Reader, out io.Writer, dir string) error {
	kind, err := readKind(in, out)
	if err != nil {
		return err
	}
	contest, err := atcoder.NewCrawler(public.NewFetcher(cfg.UserAgent), cfg.BaseURL).Crawl(ctx, kind)
	if err != nil {
		return err
	}
	fileList, err := contest.FileList(cfg.Output)
	if err != nil {
		return err
	}
	if err := public.WriteFiles(dir, fileList); err != nil {
		return err
	}
	slog.Info("wrote contest", "contest", kind.Name(), "file", cfg.Output)

	if cfg.Archive.Repo != "" {
		archive, err := public.OpenArchive(cfg.Archive.Repo, cfg.Archive.AuthorName, cfg.Archive.AuthorEmail)
		if err != nil {
			return err
		}
		hash, err := archive.Commit(fileList, fmt.Sprintf("Contest %s updated: %s", kind.Name(), time.Now().Format(time.RFC3339)))
		if err != nil {
			return err
		}
		slog.Info("committed contest to archive", "repo", cfg.Archive.Repo, "commit", hash.String())
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"diff", "samples"})
	total := 0
	for _, p := range contest.Problems {
		t.AppendRow(table.Row{p.Diff, len(p.Samples)})
		total += len(p.Samples)
	}
	t.AppendFooter(table.Row{"total", total})
	t.Render()
	return nil
}

func runTasks(cfg public.Config, in io.Reader, out io.Writer) error {
	kind, err := readKind(in, out)
	if err != nil {
		return err
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"diff", "url"})
	for _, task := range kind.Tasks() {
		t.AppendRow(table.Row{task.Diff, task.URL(cfg.BaseURL)})
	}
	t.Render()
	return nil
}

func setupLogger(level slog.Level) {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
	os.Exit(1)
}

func main() {
	var err error
	cfg, err = public.LoadConfig(".")
	if err != nil {
		fatal(err)
	}
	setupLogger(cfg.Level())
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fatal(err)
	}
}
