package app

import (
	"github.com/specialistvlad/aoc2022/internal/registry"
	"github.com/specialistvlad/aoc2022/modules/day01"
	"github.com/specialistvlad/aoc2022/modules/day02"
	"github.com/specialistvlad/aoc2022/modules/day03"
	"github.com/specialistvlad/aoc2022/modules/day04"
	"github.com/specialistvlad/aoc2022/modules/day05"
	"github.com/specialistvlad/aoc2022/modules/day06"
	"github.com/specialistvlad/aoc2022/modules/day07"
	"github.com/specialistvlad/aoc2022/modules/day08"
	"github.com/specialistvlad/aoc2022/modules/day09"
)

// coreModules is the definitive list of all puzzles that are compiled into
// the aoc binary.
var coreModules = []registry.Module{
	&day01.Module{},
	&day02.Module{},
	&day03.Module{},
	&day04.Module{},
	&day05.Module{},
	&day06.Module{},
	&day07.Module{},
	&day08.Module{},
	&day09.Module{},
}
