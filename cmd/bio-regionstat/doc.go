// Copyright 2020 Grail Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

/*
Command bio-regionstat compares two track files and prints a single number.

A track is either a SEGMENT file (suffix ".s"), listing one half-open interval
"start end" per line, or a FUNCTION file (suffix ".f"), listing one value per
line, where the line number (from 0) is the position.  Either may be
gzip-compressed, in which case ".gz" is appended to the suffix.

  -f1 x.f -f2 y.f   sample Pearson correlation coefficient of the two series
  -f1 x.s -f2 y.s   number of positions covered by both segment files
  -f1 x.s -f2 y.f   mean of the y values at positions covered by x
  -f1 y.f -f2 x.s   same as above

Covered positions that fall outside the FUNCTION series are ignored.  The
segment files are stored as merged interval lists, so memory use grows with
the number of intervals, not with the span they cover.

Usage: bio-regionstat -f1 a.s -f2 b.f [-report out.tsv]
*/
package main
