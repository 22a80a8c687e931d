// Copyright (c) 2026 Markus Weissbach.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package examsync keeps the exams table in line with the exam config file.

# Config File

A YAML list of exam scale declarations:

	- name: Mathematik I
	  min: 1.0
	  max: 5.0
	  step: 0.1

If the file is missing, Load writes a default one with two example exams and
reports created=true so main can log a warning. A file that is present but
unparsable, or that declares an invalid scale (min >= max, step <= 0,
duplicate or empty names), yields a *ConfigError and the server refuses to
start.

# Sync

Sync runs once at boot: it loads the config, diffs it against the stored
scales via the pure Reconcile function, and upserts only the entries that
changed (insert-or-update keyed by the unique exam name). The config is the
source of truth for scales; stored rows keep their id so existing grades are
never disturbed, and exams are never deleted.
*/
package examsync
