// Package hclcfg loads command hierarchy declarations written in HCL and
// translates them into the format-agnostic config model.
//
// A definition file declares nested command blocks and flag blocks:
//
//	flag "help" {
//	  short = "h"
//	  long  = "help"
//	}
//
//	command "remote" {
//	  aliases = ["rem"]
//
//	  flag "verbose" {
//	    short = "V"
//	    long  = "verbose"
//	  }
//
//	  command "add" {
//	    flag "track" {
//	      long      = "track"
//	      takes_arg = true
//	      default   = "main"
//	    }
//	  }
//	}
//
// Top-level flag blocks attach to the binary itself. A load may span several
// files; their top-level blocks are merged in file order before validation.
package hclcfg
