package hclcfg

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// flagBlock is the HCL shape of one flag declaration.
type flagBlock struct {
	Name     string     `hcl:"name,label"`
	Short    string     `hcl:"short,optional"`
	Long     string     `hcl:"long,optional"`
	TakesArg bool       `hcl:"takes_arg,optional"`
	Default  *cty.Value `hcl:"default,optional"`
}

// commandBlock is the HCL shape of one command declaration. Commands nest to
// arbitrary depth.
type commandBlock struct {
	Name     string          `hcl:"name,label"`
	Aliases  []string        `hcl:"aliases,optional"`
	Flags    []*flagBlock    `hcl:"flag,block"`
	Commands []*commandBlock `hcl:"command,block"`
}

// fileRoot decodes the top level of a definition file.
type fileRoot struct {
	Flags    []*flagBlock    `hcl:"flag,block"`
	Commands []*commandBlock `hcl:"command,block"`
	Remain   hcl.Body        `hcl:",remain"`
}
