package main

import (
	"testing"

	"github.com/npillmayer/gopred/tinylang"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	conf, err := parseConfig([]byte("trace = \"Debug\"\ntree = false\n"))
	require.NoError(t, err)
	assert.Equal(t, "Debug", conf.Trace)
	assert.False(t, conf.Tree)
	assert.Equal(t, "tl> ", conf.Prompt, "prompt should keep its default")
	//
	_, err = parseConfig([]byte("colour = \"red\"\n"))
	assert.Error(t, err)
	_, err = parseConfig([]byte("tree = \n"))
	assert.Error(t, err)
	//
	conf, err = loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), conf)
}

func TestLeveledTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.tinylang")
	defer teardown()
	//
	tree, err := tinylang.Parse("print 1 .")
	require.NoError(t, err)
	list := leveledTree(tree)
	require.NotEmpty(t, list)
	assert.Equal(t, 0, list[0].Level)
	assert.Equal(t, "Program", list[0].Text)
	assert.Greater(t, list[1].Level, 0)
}

func TestExecute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gopred.tinylang")
	defer teardown()
	//
	table, err := tinylang.Table()
	require.NoError(t, err)
	intp := &Intp{table: table, conf: defaultConfig()}
	quit, err := intp.Eval(":quit")
	assert.NoError(t, err)
	assert.True(t, quit)
	_, err = intp.Eval(":frist")
	assert.Error(t, err)
	quit, err = intp.Eval(":rules")
	assert.NoError(t, err)
	assert.False(t, quit)
	_, err = intp.Eval("print .")
	assert.Error(t, err)
}
