package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"golang.org/x/exp/slices"

	"github.com/npillmayer/intcoll/collect"
	"github.com/npillmayer/intcoll/intlist"
	"github.com/npillmayer/intcoll/intset"
)

// Intp is our interpreter object. It holds named containers.
type Intp struct {
	vars      *treemap.Map // name -> *intlist.IntList | *intset.IntSet
	lastInput string
}

// NewIntp creates an interpreter without any variables.
func NewIntp() *Intp {
	return &Intp{vars: treemap.NewWithStringComparator()}
}

// command implements a single command. args are the tokens after the command name.
type command struct {
	usage   string
	minArgs int
	run     func(intp *Intp, args []token) (interface{}, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"new":         {"new list|set NAME [CAPACITY]", 2, cmdNew},
		"append":      {"append LIST VALUE…", 2, cmdAppend},
		"push":        {"push LIST VALUE", 2, cmdAppend},
		"pop":         {"pop LIST", 1, cmdPop},
		"peek":        {"peek LIST", 1, cmdPeek},
		"get":         {"get LIST INDEX", 2, cmdGet},
		"set":         {"set LIST INDEX VALUE", 3, cmdSet},
		"insert":      {"insert LIST INDEX VALUE", 3, cmdInsert},
		"remove":      {"remove LIST INDEX", 2, cmdRemove},
		"fastremove":  {"fastremove LIST INDEX", 2, cmdFastRemove},
		"removevalue": {"removevalue LIST VALUE", 2, cmdRemoveValue},
		"index":       {"index LIST VALUE", 2, cmdIndex},
		"lastindex":   {"lastindex LIST VALUE", 2, cmdLastIndex},
		"sort":        {"sort LIST", 1, cmdSort},
		"trim":        {"trim LIST", 1, cmdTrim},
		"collect":     {"collect NAME VALUE…", 1, cmdCollect},
		"hash":        {"hash LIST", 1, cmdHash},
		"add":         {"add SET VALUE…", 2, cmdAdd},
		"del":         {"del SET VALUE…", 2, cmdDel},
		"has":         {"has SET VALUE", 2, cmdHas},
		"size":        {"size NAME", 1, cmdSize},
		"clear":       {"clear NAME", 1, cmdClear},
		"show":        {"show NAME", 1, cmdShow},
		"eq":          {"eq NAME NAME", 2, cmdEq},
		"vars":        {"vars", 0, cmdVars},
		"help":        {"help", 0, cmdHelp},
	}
}

// Eval executes a command, given on a line by itself.
func (intp *Intp) Eval(line string) (interface{}, bool, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return nil, false, err
	}
	if len(tokens) == 0 { // comment only
		return nil, false, nil
	}
	intp.lastInput = line
	name := strings.ToLower(tokens[0].lexeme)
	if name == "quit" || name == "exit" {
		return nil, true, nil
	}
	cmd, ok := commands[name]
	if !ok || tokens[0].kind != tokIdent {
		return nil, false, errors.Errorf("unknown command '%s', try 'help'", tokens[0].lexeme)
	}
	args := tokens[1:]
	if len(args) < cmd.minArgs {
		return nil, false, errors.Errorf("usage: %s", cmd.usage)
	}
	tracer().Debugf("command %s with %d args", name, len(args))
	result, err := cmd.run(intp, args)
	return result, false, err
}

func (intp *Intp) lookup(name token) (interface{}, error) {
	if v, found := intp.vars.Get(name.lexeme); found {
		return v, nil
	}
	return nil, errors.Errorf("unknown variable '%s'", name.lexeme)
}

func (intp *Intp) list(name token) (*intlist.IntList, error) {
	v, err := intp.lookup(name)
	if err != nil {
		return nil, err
	}
	if l, ok := v.(*intlist.IntList); ok {
		return l, nil
	}
	return nil, errors.Errorf("'%s' is not a list", name.lexeme)
}

func (intp *Intp) set(name token) (*intset.IntSet, error) {
	v, err := intp.lookup(name)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(*intset.IntSet); ok {
		return s, nil
	}
	return nil, errors.Errorf("'%s' is not a set", name.lexeme)
}

func int32Args(args []token) ([]int32, error) {
	values := make([]int32, len(args))
	for i, a := range args {
		v, err := a.Int32()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// --- Commands --------------------------------------------------------------

func cmdNew(intp *Intp, args []token) (interface{}, error) {
	capacity := 0
	if len(args) > 2 {
		n, err := args[2].Int()
		if err != nil {
			return nil, err
		}
		capacity = n
	}
	if args[1].kind != tokIdent {
		return nil, errors.Errorf("illegal variable name '%s'", args[1].lexeme)
	}
	var v interface{}
	switch args[0].lexeme {
	case "list":
		v = intlist.New(intlist.WithCapacity(capacity))
	case "set":
		v = intset.New(intset.WithCapacity(capacity))
	default:
		return nil, errors.Errorf("cannot create a '%s', only list or set", args[0].lexeme)
	}
	intp.vars.Put(args[1].lexeme, v)
	return v, nil
}

func cmdAppend(intp *Intp, args []token) (interface{}, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, err
	}
	values, err := int32Args(args[1:])
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		l.Push(v)
	}
	return l, nil
}

func cmdPop(intp *Intp, args []token) (interface{}, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, err
	}
	return l.Pop()
}

func cmdPeek(intp *Intp, args []token) (interface{}, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, err
	}
	return l.Peek()
}

func listAndIndex(intp *Intp, args []token) (*intlist.IntList, int, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, 0, err
	}
	i, err := args[1].Int()
	return l, i, err
}

func cmdGet(intp *Intp, args []token) (interface{}, error) {
	l, i, err := listAndIndex(intp, args)
	if err != nil {
		return nil, err
	}
	return l.Get(i)
}

func cmdSet(intp *Intp, args []token) (interface{}, error) {
	l, i, err := listAndIndex(intp, args)
	if err != nil {
		return nil, err
	}
	v, err := args[2].Int32()
	if err != nil {
		return nil, err
	}
	return l.Set(i, v)
}

func cmdInsert(intp *Intp, args []token) (interface{}, error) {
	l, i, err := listAndIndex(intp, args)
	if err != nil {
		return nil, err
	}
	v, err := args[2].Int32()
	if err != nil {
		return nil, err
	}
	if err = l.InsertAt(i, v); err != nil {
		return nil, err
	}
	return l, nil
}

func cmdRemove(intp *Intp, args []token) (interface{}, error) {
	l, i, err := listAndIndex(intp, args)
	if err != nil {
		return nil, err
	}
	return l.RemoveAt(i)
}

func cmdFastRemove(intp *Intp, args []token) (interface{}, error) {
	l, i, err := listAndIndex(intp, args)
	if err != nil {
		return nil, err
	}
	return l.RemoveFastUnordered(i)
}

func listAndValue(intp *Intp, args []token) (*intlist.IntList, int32, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, 0, err
	}
	v, err := args[1].Int32()
	return l, v, err
}

func cmdRemoveValue(intp *Intp, args []token) (interface{}, error) {
	l, v, err := listAndValue(intp, args)
	if err != nil {
		return nil, err
	}
	return l.RemoveValue(v), nil
}

func cmdIndex(intp *Intp, args []token) (interface{}, error) {
	l, v, err := listAndValue(intp, args)
	if err != nil {
		return nil, err
	}
	return l.IndexOf(v), nil
}

func cmdLastIndex(intp *Intp, args []token) (interface{}, error) {
	l, v, err := listAndValue(intp, args)
	if err != nil {
		return nil, err
	}
	return l.LastIndexOf(v), nil
}

func cmdSort(intp *Intp, args []token) (interface{}, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, err
	}
	l.Sort()
	return l, nil
}

func cmdTrim(intp *Intp, args []token) (interface{}, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, err
	}
	l.TrimToSize()
	return fmt.Sprintf("size=%d capacity=%d", l.Size(), l.Cap()), nil
}

// collect NAME v… folds the values into a new list NAME, in parallel.
func cmdCollect(intp *Intp, args []token) (interface{}, error) {
	if args[0].kind != tokIdent {
		return nil, errors.Errorf("illegal variable name '%s'", args[0].lexeme)
	}
	values := make([]interface{}, len(args)-1)
	for i, a := range args[1:] {
		v, err := a.Int32()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	l, err := collect.Parallel(context.Background(), intlist.Collector(), values, 4)
	if err != nil {
		return nil, err
	}
	intp.vars.Put(args[0].lexeme, l)
	return l, nil
}

type fingerprint struct {
	Values []int32 `hash:"name:values"`
}

func cmdHash(intp *Intp, args []token) (interface{}, error) {
	l, err := intp.list(args[0])
	if err != nil {
		return nil, err
	}
	digest, err := structhash.Hash(fingerprint{Values: l.ToArray()}, 1)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("hash code=%d digest=%s", l.HashCode(), digest), nil
}

func cmdAdd(intp *Intp, args []token) (interface{}, error) {
	s, err := intp.set(args[0])
	if err != nil {
		return nil, err
	}
	values, err := int32Args(args[1:])
	if err != nil {
		return nil, err
	}
	return s.AddAll(values...), nil
}

func cmdDel(intp *Intp, args []token) (interface{}, error) {
	s, err := intp.set(args[0])
	if err != nil {
		return nil, err
	}
	values, err := int32Args(args[1:])
	if err != nil {
		return nil, err
	}
	n := 0
	for _, v := range values {
		if s.Remove(v) {
			n++
		}
	}
	return n, nil
}

func cmdHas(intp *Intp, args []token) (interface{}, error) {
	s, err := intp.set(args[0])
	if err != nil {
		return nil, err
	}
	v, err := args[1].Int32()
	if err != nil {
		return nil, err
	}
	return s.Contains(v), nil
}

func cmdSize(intp *Intp, args []token) (interface{}, error) {
	v, err := intp.lookup(args[0])
	if err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case *intlist.IntList:
		return c.Size(), nil
	case *intset.IntSet:
		return c.Size(), nil
	}
	return nil, errors.Errorf("'%s' has no size", args[0].lexeme)
}

func cmdClear(intp *Intp, args []token) (interface{}, error) {
	v, err := intp.lookup(args[0])
	if err != nil {
		return nil, err
	}
	switch c := v.(type) {
	case *intlist.IntList:
		c.Clear()
	case *intset.IntSet:
		c.Clear()
	}
	return v, nil
}

func cmdShow(intp *Intp, args []token) (interface{}, error) {
	v, err := intp.lookup(args[0])
	if err != nil {
		return nil, err
	}
	return namedContainer{name: args[0].lexeme, container: v}, nil
}

func cmdEq(intp *Intp, args []token) (interface{}, error) {
	a, err := intp.lookup(args[0])
	if err != nil {
		return nil, err
	}
	b, err := intp.lookup(args[1])
	if err != nil {
		return nil, err
	}
	switch c := a.(type) {
	case *intlist.IntList:
		return c.Equals(b), nil
	case *intset.IntSet:
		s, ok := b.(*intset.IntSet)
		return ok && c.Equals(s), nil
	}
	return false, nil
}

func cmdVars(intp *Intp, args []token) (interface{}, error) {
	var b strings.Builder
	it := intp.vars.Iterator()
	for it.Next() {
		fmt.Fprintf(&b, "%s = %v\n", it.Key(), it.Value())
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func cmdHelp(intp *Intp, args []token) (interface{}, error) {
	keys := make([]string, 0, len(commands))
	for _, c := range commands {
		keys = append(keys, c.usage)
	}
	slices.Sort(keys)
	return strings.Join(append(keys, "quit"), "\n"), nil
}

// --- Output ----------------------------------------------------------------

// namedContainer is the result of 'show', rendered as a tree.
type namedContainer struct {
	name      string
	container interface{}
}

const maxShown = 32

func printResult(result interface{}) {
	switch r := result.(type) {
	case nil:
		pterm.Info.Println("nil")
	case namedContainer:
		pterm.Println(r.name)
		pterm.DefaultTree.WithRoot(containerTree(r.container)).Render()
	default:
		pterm.Info.Println(fmt.Sprintf("%v", r))
	}
}

// containerTree builds a tree with one leaf per element, up to maxShown.
func containerTree(c interface{}) pterm.TreeNode {
	ll := pterm.LeveledList{}
	switch container := c.(type) {
	case *intlist.IntList:
		it := container.Iterator()
		for it.Next() && it.Index() < maxShown {
			ll = append(ll, pterm.LeveledListItem{
				Level: 0,
				Text:  fmt.Sprintf("[%d] %d", it.Index(), it.Int()),
			})
		}
		ll = appendSummary(ll, container.Size(), container.Cap())
	case *intset.IntSet:
		n := 0
		container.Each(func(v int32) {
			if n < maxShown {
				ll = append(ll, pterm.LeveledListItem{Level: 0, Text: fmt.Sprintf("%d", v)})
			}
			n++
		})
		ll = appendSummary(ll, container.Size(), container.Cap())
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

func appendSummary(ll pterm.LeveledList, size, capacity int) pterm.LeveledList {
	if size > maxShown {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "…"})
	}
	return append(ll, pterm.LeveledListItem{
		Level: 0,
		Text:  fmt.Sprintf("size=%d capacity=%d", size, capacity),
	})
}
