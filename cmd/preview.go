package cmd

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/dosewise/internal/catalog"
	"github.com/abhisek/dosewise/internal/condition"
	"github.com/abhisek/dosewise/internal/matching"
	"github.com/abhisek/dosewise/internal/questions"
	"github.com/abhisek/dosewise/internal/randutil"
	"github.com/abhisek/dosewise/internal/scenario"
	"github.com/rs/zerolog"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate and play one case in plain text (no TUI)",
	Long: `Generate a case for a condition and answer it on stdin/stdout.

This is a stateless developer tool — no TUI, no score carried between runs.
Useful for evaluating question quality and testing new condition templates.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("condition", "", "Condition template name (default: random)")
	previewCmd.Flags().Bool("list", false, "List available condition templates and exit")
}

func runPreview(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, name := range condition.Names() {
			fmt.Println(name)
		}
		return nil
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load medication catalog: %w", err)
	}

	seed, _ := cmd.Flags().GetUint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := randutil.New(seed)
	gen := scenario.NewGenerator(cat, rng, zerolog.Nop())

	var scen *scenario.Scenario
	if name, _ := cmd.Flags().GetString("condition"); name != "" {
		tmpl, err := condition.Get(name)
		if err != nil {
			return fmt.Errorf("%w — run with --list to see template names", err)
		}
		scen = gen.Generate(tmpl)
	} else {
		scen = gen.GenerateRandom()
	}

	printCaseSheet(scen)

	scanner := bufio.NewScanner(os.Stdin)
	correct, answered := previewQuestions(scanner, rng, scen)
	pairs, misses := previewMatching(scanner, rng, scen)

	fmt.Printf("── Summary: %d/%d questions, %d pairs matched, %d mismatches ──\n",
		correct, answered, pairs, misses)
	return nil
}

func printCaseSheet(s *scenario.Scenario) {
	fmt.Printf("── %s ──\n", s.Condition)
	fmt.Println(s.DispatchInfo)
	fmt.Println()

	p := s.Patient
	fmt.Printf("Patient:    %s, %d (%s)\n", p.Name, p.Age, p.Gender)
	fmt.Printf("Address:    %s, %s\n", p.Address, p.Postcode)
	fmt.Printf("NHS Number: %s\n", p.NHSNumber)
	fmt.Printf("Presenting: %s\n", p.Presentation)
	if len(p.MedicalHistory) > 0 {
		fmt.Printf("History:    %s\n", strings.Join(p.MedicalHistory, ", "))
	}

	fmt.Println("\nRepeat prescription:")
	for _, rx := range s.Prescriptions {
		marker := ""
		if rx.Medication.TimeCritical {
			marker = "  [TIME CRITICAL]"
		}
		fmt.Printf("  %-22s %s — %s — %s%s\n",
			rx.Medication.Name, rx.Medication.Dose, rx.Instructions, rx.Quantity, marker)
	}
	fmt.Println()
}

func previewQuestions(scanner *bufio.Scanner, rng *rand.Rand, s *scenario.Scenario) (correct, answered int) {
	qs := questions.New(rng, questions.Config{}).Generate(s)
	if len(qs) == 0 {
		fmt.Println("(no questions for this case)")
		return 0, 0
	}

	labels := "ABCD"
	for i, q := range qs {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(qs))
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %c) %s\n", labels[j%len(labels)], opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return correct, answered
		}
		answer := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		answered++
		idx := strings.IndexByte(labels, answer[0])
		if idx == q.CorrectIndex {
			correct++
			fmt.Println("✓ Correct.")
		} else {
			fmt.Printf("✗ Wrong. Answer: %c) %s\n",
				labels[q.CorrectIndex], q.Options[q.CorrectIndex])
		}
		if q.Explanation != "" {
			fmt.Println(q.Explanation)
		}
		fmt.Println()
	}
	return correct, answered
}

func previewMatching(scanner *bufio.Scanner, rng *rand.Rand, s *scenario.Scenario) (pairs, misses int) {
	set := matching.Generate(rng, s)
	if len(set.Drugs) == 0 {
		return 0, 0
	}

	fmt.Println("── Matching ──")
	for i, d := range set.Drugs {
		fmt.Printf("  %d) %s\n", i+1, d.DrugName)
	}
	fmt.Println()

	for _, target := range set.Targets {
		label := target.Content
		if target.Kind == matching.KindIndication {
			label = "Used for: " + target.Content
		}
		fmt.Printf("Which drug? %q: ", label)
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			return pairs, misses
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || n < 1 || n > len(set.Drugs) {
			fmt.Println("(skipped)")
			continue
		}
		if set.Drugs[n-1].ID == target.CorrectDrugID {
			pairs++
			fmt.Println("✓ Matched.")
		} else {
			misses++
			fmt.Println("✗ Not a match.")
		}
	}
	fmt.Println()
	return pairs, misses
}
