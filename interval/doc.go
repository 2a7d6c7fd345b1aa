/*Package interval implements the positional algebra used by bio-regionstat:
  building a set of covered positions from a list of half-open [start, end)
  intervals, intersecting such sets, and iterating over the covered positions.

  (Note the 'union'.  Overlapping and duplicate intervals are merged, not
  tracked separately, so a position is either covered or it isn't.)

  A PositionSet is stored as a sorted sequence of interval endpoints rather
  than as the expanded set of integers, so memory use is proportional to the
  number of merged intervals instead of the total span they cover.  All
  observable behavior (membership, cardinality, intersection) is the same as
  for the expanded representation.
*/
package interval
