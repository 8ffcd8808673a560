package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/agbru/mulbench/internal/ui"
)

// setCustomUsage installs a grouped, colored usage printer.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		t := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			t = ui.NoColorTheme
		}
		out := fs.Output()

		fmt.Fprintf(out, "\n%smulbench%s\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "Benchmarks direct and Karatsuba convolution of coefficient vectors.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n", t.Warning, t.Reset)
		fmt.Fprintf(out, "  %s [flags]                     sweep sizes and write the report\n", fs.Name())
		fmt.Fprintf(out, "  %s -a 1,2,3 -b 4,5,6 [flags]   multiply one pair with every algorithm\n\n", fs.Name())
		fmt.Fprintf(out, "%sFlags:%s\n", t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			sig := "-" + f.Name
			if name != "" {
				sig += " " + name
			}
			fmt.Fprintf(out, "  %s%-28s%s %s", t.Primary, sig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintf(out, "\nFlags other than -a and -b can also be set through %s<FLAG>, e.g. %sSTEPS=120.\n\n", EnvPrefix, EnvPrefix)
	}
}
