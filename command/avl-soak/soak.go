// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// a randomised run against a tree and a reference set
type soak struct {
	log       *logger.L
	config    *Configuration
	random    *rand.Rand
	tree      *avl.Tree
	reference map[int]struct{}
	summary   Summary
}

// Summary - totals for a completed or interrupted run
type Summary struct {
	Seed        int64          `json:"seed"`
	Rounds      int            `json:"rounds"`
	Inserts     int            `json:"inserts"`
	Duplicates  int            `json:"duplicates"`
	Deletes     int            `json:"deletes"`
	Absent      int            `json:"absent"`
	Lookups     int            `json:"lookups"`
	Checks      int            `json:"checks"`
	Interrupted bool           `json:"interrupted"`
	Elapsed     string         `json:"elapsed"`
	Tree        avl.Statistics `json:"tree"`
}

func newSoak(config *Configuration, log *logger.L) *soak {
	seed := config.Seed
	if 0 == seed {
		seed = time.Now().UnixNano()
	}
	return &soak{
		log:       log,
		config:    config,
		random:    rand.New(rand.NewSource(seed)),
		tree:      avl.New(),
		reference: make(map[int]struct{}),
		summary: Summary{
			Seed: seed,
		},
	}
}

// run all rounds, stopping early if shutdown is closed
func (s *soak) run(shutdown <-chan struct{}) (Summary, error) {
	start := time.Now()
	s.log.Infof("seed: %d  rounds: %d  key range: %d", s.summary.Seed, s.config.Rounds, s.config.KeyRange)

loop:
	for round := 1; round <= s.config.Rounds; round += 1 {
		select {
		case <-shutdown:
			s.log.Warnf("interrupted at round: %d", round)
			s.summary.Interrupted = true
			break loop
		default:
		}

		if err := s.step(round); nil != err {
			return s.fail(start, err)
		}
		s.summary.Rounds = round

		if 0 == round%s.config.CheckEvery {
			if err := s.check(round); nil != err {
				return s.fail(start, err)
			}
		}
		if 0 == round%s.config.ReportEvery {
			st := s.tree.Statistics()
			s.log.Infof("round: %d  count: %d  height: %d  rotations: %d/%d", round, st.Count, st.Height, st.LeftRotations, st.RightRotations)
		}
	}

	// always finish with a full check
	if err := s.check(s.summary.Rounds); nil != err {
		return s.fail(start, err)
	}
	summary := s.finish(start)
	s.log.Infof("summary: %+v", summary)
	return summary, nil
}

func (s *soak) finish(start time.Time) Summary {
	s.summary.Elapsed = time.Since(start).String()
	s.summary.Tree = s.tree.Statistics()
	return s.summary
}

// report on the PANIC channel with the seed needed to repeat the run
func (s *soak) fail(start time.Time, err error) (Summary, error) {
	summary := s.finish(start)
	fault.Criticalf("soak failed after round: %d  seed: %d  error: %s", summary.Rounds, summary.Seed, err)
	return summary, err
}

// one random insert or delete followed by a random lookup
func (s *soak) step(round int) error {
	k := s.random.Intn(s.config.KeyRange)
	_, present := s.reference[k]

	if s.random.Intn(100) < s.config.InsertPercent {
		ok := s.tree.Insert(avl.IntItem(k))
		s.log.Tracef("round: %d  insert: %d → %v", round, k, ok)
		if ok == present {
			return fmt.Errorf("%w: round: %d  insert: %d  returned: %v", fault.ErrMembershipMismatch, round, k, ok)
		}
		if ok {
			s.reference[k] = struct{}{}
			s.summary.Inserts += 1
		} else {
			s.summary.Duplicates += 1
		}
	} else {
		ok := s.tree.Delete(avl.IntItem(k))
		s.log.Tracef("round: %d  delete: %d → %v", round, k, ok)
		if ok != present {
			return fmt.Errorf("%w: round: %d  delete: %d  returned: %v", fault.ErrMembershipMismatch, round, k, ok)
		}
		if ok {
			delete(s.reference, k)
			s.summary.Deletes += 1
		} else {
			s.summary.Absent += 1
		}
	}

	k = s.random.Intn(s.config.KeyRange)
	_, present = s.reference[k]
	s.summary.Lookups += 1
	if s.tree.Contains(avl.IntItem(k)) != present {
		return fmt.Errorf("%w: round: %d  contains: %d", fault.ErrMembershipMismatch, round, k)
	}
	return nil
}

// compare the whole tree with the reference set
func (s *soak) check(round int) error {
	s.summary.Checks += 1

	if s.tree.Count() != len(s.reference) {
		return fmt.Errorf("%w: round: %d  count: %d  expected: %d", fault.ErrSizeMismatch, round, s.tree.Count(), len(s.reference))
	}
	if err := s.tree.Validate(); nil != err {
		return fmt.Errorf("round: %d  %w", round, err)
	}

	n := 0
	previous := -1
	var mismatch error
	err := s.tree.ForEach(func(key avl.Item) bool {
		k := int(key.(avl.IntItem))
		if k <= previous {
			mismatch = fmt.Errorf("%w: round: %d  key: %d  after: %d", fault.ErrTraversalOrder, round, k, previous)
			return false
		}
		if _, ok := s.reference[k]; !ok {
			mismatch = fmt.Errorf("%w: round: %d  unexpected key: %d", fault.ErrMembershipMismatch, round, k)
			return false
		}
		previous = k
		n += 1
		return true
	})
	if nil != err {
		return err
	}
	if nil != mismatch {
		return mismatch
	}
	if n != len(s.reference) {
		return fmt.Errorf("%w: round: %d  traversed: %d  expected: %d", fault.ErrSizeMismatch, round, n, len(s.reference))
	}

	s.log.Debugf("round: %d  check passed  count: %d  height: %d", round, n, s.tree.Height())
	return nil
}
