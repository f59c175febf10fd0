package main

import "fmt"

type versionCmd struct{ r *root }

func (v *versionCmd) Run() error {
	fmt.Fprintf(v.r.stdout, "%s version %s", v.r.program, version)
	if commit != "" {
		fmt.Fprintf(v.r.stdout, " (%s", commit)
		if date != "" {
			fmt.Fprintf(v.r.stdout, " %s", date)
		}
		fmt.Fprint(v.r.stdout, ")")
	}
	fmt.Fprintln(v.r.stdout)
	return nil
}
