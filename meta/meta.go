// meta/meta.go
package meta

// TARGET is the value every expression has to reach.
const TARGET = 24.0

// TOLERANCE is how close to TARGET a result must be to count.
const TOLERANCE = 1e-4

// SEED of 0 seeds the deck from the clock.
const SEED = 0

// SURVEY_DIR is where survey records are written.
const SURVEY_DIR = "experiments"

const LOG_LEVEL = "info"
