// Package main is the entry point for the iplstats CLI, which imports the IPL
// match and delivery tables and computes batting, bowling, team and season
// statistics from them.
package main

import "github.com/Aniket-Muthal/ipl-data-analytics-app/cmd"

func main() {
	cmd.Execute()
}
