// Package day09 compacts a fragmented disk and computes its checksum.
package day09

import (
	"fmt"
	"strconv"
	"strings"
)

const free = -1

// Disk is a block layout; each block holds a file ID or is free.
type Disk []int

// span is a contiguous run of blocks.
type span struct {
	start, length int
}

// Parse expands a dense disk map of alternating file and free-space lengths.
func Parse(input string) (Disk, error) {
	var disk Disk
	for i, r := range strings.TrimSpace(input) {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("position %d: %q is not a digit", i, r)
		}

		id := free
		if i%2 == 0 {
			id = i / 2
		}
		for range int(r - '0') {
			disk = append(disk, id)
		}
	}
	return disk, nil
}

// CompactBlocks moves file blocks one at a time from the end of the disk
// into the leftmost free block.
func (d Disk) CompactBlocks() Disk {
	out := append(Disk(nil), d...)
	left, right := 0, len(out)-1
	for {
		for left < len(out) && out[left] != free {
			left++
		}
		for right >= 0 && out[right] == free {
			right--
		}
		if left >= right {
			return out
		}
		out[left], out[right] = out[right], free
	}
}

// CompactFiles moves whole files, highest ID first, into the leftmost free
// span that fits them. Each file is tried once.
func (d Disk) CompactFiles() Disk {
	out := append(Disk(nil), d...)
	files := make(map[int]span)
	var gaps []span

	for i := 0; i < len(out); {
		j := i
		for j < len(out) && out[j] == out[i] {
			j++
		}
		if out[i] == free {
			gaps = append(gaps, span{start: i, length: j - i})
		} else {
			files[out[i]] = span{start: i, length: j - i}
		}
		i = j
	}

	for id := len(files) - 1; id >= 0; id-- {
		file, ok := files[id]
		if !ok {
			continue
		}
		for g := range gaps {
			gap := &gaps[g]
			if gap.start >= file.start {
				break
			}
			if gap.length < file.length {
				continue
			}
			for k := range file.length {
				out[gap.start+k] = id
				out[file.start+k] = free
			}
			gap.start += file.length
			gap.length -= file.length
			break
		}
	}
	return out
}

// Checksum sums each block position multiplied by the file ID it holds.
func (d Disk) Checksum() int {
	sum := 0
	for i, id := range d {
		if id != free {
			sum += i * id
		}
	}
	return sum
}

// String renders the disk with file IDs and '.' for free blocks.
// It is only unambiguous while every ID is a single digit.
func (d Disk) String() string {
	var b strings.Builder
	for _, id := range d {
		if id == free {
			b.WriteByte('.')
			continue
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// Part1 compacts block by block.
func Part1(input string) (int, error) {
	disk, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return disk.CompactBlocks().Checksum(), nil
}

// Part2 compacts whole files.
func Part2(input string) (int, error) {
	disk, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return disk.CompactFiles().Checksum(), nil
}
