// Command pbxtool is a small command-line driver over the xcode package:
// dump, reformat, list targets, and list orphaned references in a
// project.pbxproj file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mozharovsky/xcode"
)

type command func(args []string) error

var commands = map[string]command{
	"dump":    cmdDump,
	"fmt":     cmdFmt,
	"targets": cmdTargets,
	"orphans": cmdOrphans,
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, ok := commands[os.Args[1]]
	if !ok {
		usage()
		os.Exit(2)
	}
	if err := cmd(os.Args[2:]); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pbxtool <dump|fmt|targets|orphans> <project.pbxproj>")
}

func loadArg(args []string) (*xcode.XcodeProject, error) {
	fs := flag.NewFlagSet("pbxtool", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() < 1 {
		return nil, fmt.Errorf("pbxtool: missing project.pbxproj path")
	}
	return xcode.LoadProject(fs.Arg(0))
}

func cmdDump(args []string) error {
	proj, err := loadArg(args)
	if err != nil {
		return err
	}
	fmt.Print(proj.Build())
	return nil
}

func cmdFmt(args []string) error {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() < 1 {
		return fmt.Errorf("pbxtool fmt: missing project.pbxproj path")
	}
	path := fs.Arg(0)
	proj, err := xcode.LoadProject(path)
	if err != nil {
		return err
	}
	return proj.Save(path)
}

func cmdTargets(args []string) error {
	proj, err := loadArg(args)
	if err != nil {
		return err
	}
	for _, t := range proj.NativeTargets() {
		productType, _ := t.GetString("productType")
		fmt.Printf("%s\t%s\n", t.DisplayName(), productType)
	}
	return nil
}

func cmdOrphans(args []string) error {
	proj, err := loadArg(args)
	if err != nil {
		return err
	}
	orphans := proj.FindOrphanedReferences()
	if len(orphans) == 0 {
		fmt.Println("no orphaned references")
		return nil
	}
	for _, o := range orphans {
		fmt.Printf("%s (%s).%s -> %s [missing]\n", o.ReferrerUUID, o.ReferrerISA, o.Property, o.OrphanUUID)
	}
	return nil
}
