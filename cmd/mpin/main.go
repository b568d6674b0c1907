// Command mpin is the console harness over the classifier: check one PIN per
// argument, or run an interactive prompt loop when no arguments are given.
//
//	mpin -dob 1992-08-15 1508 5839
//	mpin -dob 1992-08-15 -spouse-dob 1994-03-03 -anniversary 2018-11-20
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/0xabhi/mpin-api/internal/mpin"
	"github.com/0xabhi/mpin-api/internal/validate"
)

func main() {
	dob := flag.String("dob", "", "own date of birth (YYYY-MM-DD)")
	spouseDOB := flag.String("spouse-dob", "", "spouse date of birth (YYYY-MM-DD)")
	anniversary := flag.String("anniversary", "", "anniversary date (YYYY-MM-DD)")
	flag.Parse()

	demo, err := parseDemographics(*dob, *spouseDOB, *anniversary)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mpin:", err)
		os.Exit(2)
	}

	cls := mpin.Default()

	if flag.NArg() > 0 {
		exit := 0
		for _, arg := range flag.Args() {
			if !check(cls, arg, demo) {
				exit = 1
			}
		}
		os.Exit(exit)
	}

	// Interactive loop: one PIN per line, empty line or EOF quits.
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("PIN> ")
		if !sc.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			return
		}
		check(cls, line, demo)
	}
}

func parseDemographics(dob, spouseDOB, anniversary string) (mpin.Demographics, error) {
	var demo mpin.Demographics
	var err error
	if demo.Self, err = validate.Date("dob", dob); err != nil {
		return demo, err
	}
	if demo.Spouse, err = validate.Date("spouse-dob", spouseDOB); err != nil {
		return demo, err
	}
	if demo.Anniversary, err = validate.Date("anniversary", anniversary); err != nil {
		return demo, err
	}
	return demo, nil
}

// check prints the verdict for one PIN and reports whether input was valid.
func check(cls *mpin.Classifier, pin string, demo mpin.Demographics) bool {
	res, err := cls.Classify(strings.TrimSpace(pin), demo)
	if err != nil {
		fmt.Printf("%s: INVALID_INPUT (%v)\n", pin, err)
		return false
	}
	if res.Strength == mpin.Strong {
		fmt.Printf("%s: STRONG\n", pin)
		return true
	}
	reasons := make([]string, 0, len(res.Reasons))
	for _, r := range res.Reasons {
		reasons = append(reasons, string(r))
	}
	fmt.Printf("%s: WEAK (%s)\n", pin, strings.Join(reasons, ", "))
	return true
}
