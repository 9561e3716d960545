// Package gen synthesizes the supplemental members of generated model classes.
//
// A host pipeline builds one model.Class per generated struct and notifies the
// plugins of this package as it goes. The plugins append members, constants and
// annotations to the class; they never remove or reorder what is already there.
//
// # Architecture
//
//	host pipeline (table introspection, type mapping)
//	        ↓
//	   Runner / Chain (plugin hooks, in configured order)
//	        ↓
//	   EqualsHashCodePlugin  →  HashEngine, EqualEngine
//	   ToStringPlugin        →  StringEngine
//	   JSONPlugin            →  annotate.Serialization
//	   ValidationPlugin      →  annotate.Validation
//	        ↓
//	   model.Class.Source() (jennifer + goimports)
//
// # Hash codes
//
// HashEngine reproduces the 31-based hash combination of the JVM column by
// column, with one difference: every generated HashCode gets its own prime
// multiplier from a prime.Source. Using a distinct multiplier per class avoids
// systematic collisions when values of different classes share a hash table.
//
//	func (m *User) HashCode() int32 {
//		const prime = 3
//		var result int32 = 1
//		result = prime*result + int32(m.Age)
//		result = prime*result + hashcode.String(m.Name)
//		return result
//	}
//
// A prime.Sequence lives for one run and is shared by reference. When it cannot
// issue a prime below math.MaxInt32 the run aborts with an error matching
// membergen.ErrPrimeSpaceExhausted.
//
// # Configuration
//
// Plugins read a flat Properties map once, at construction. Boolean keys are
// true only for "true", in any case:
//
//	useHashFromRoot                    fold the parent HashCode and Equal in
//	useStringFromRoot                  append the parent String
//	ignoreStaticFieldsInString         leave constants out of String
//	appendHashInString                 print the hash code first in String
//	annotateAccessorsInsteadOfFields   put validation constraints on getters
//	matchEmailAsPattern                match column names against e(-|_)*mail
//
// A YAML document lists the plugins in chain order:
//
//	configs, err := gen.LoadProperties(data)
//	if err != nil {
//	    return err
//	}
//	chain, err := gen.NewPlugins(configs, prime.NewSequence(), logger)
//	if err != nil {
//	    return err
//	}
//	runner, err := gen.NewRunner(chain, gen.WithLogger(logger))
//
// # Error Handling
//
// Fatal plugin failures are reported through the Failer interface and returned
// by Runner.Run as a *SynthesisError wrapping the cause:
//
//	if err := runner.Run(ctx, jobs...); err != nil {
//	    if membergen.IsExhaustedError(err) {
//	        // Too many hashed classes for 32-bit multipliers.
//	    }
//	    return err
//	}
//
// Columns of unknown kinds are skipped by HashEngine, and classes without a
// constructor get no constructor annotations; neither is an error.
package gen
