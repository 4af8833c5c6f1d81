// Package serialization implements the versioned weights file used to
// checkpoint a network.
//
// A versioned file stores every node's weights as a base vector followed by
// an append-only list of deltas, so any past save can be reconstructed
// without keeping full copies:
//
//	File Structure (JSON):
//	  [                                  one record per layer, in order
//	    {
//	      "activation":      "relu",
//	      "input_size":      2,
//	      "output_size":     2,
//	      "weights_history": [            one history per output node
//	        [[base...], [delta1...], [delta2...]],
//	        ...
//	      ]
//	    },
//	    ...
//	  ]
//
// Version k of a node is its base plus the first k deltas. Version 0 is the
// base; asking for more versions than exist yields the latest state.
//
// Files are rewritten in place on every save. Nothing here locks the file:
// concurrent Save/Load calls against one path must be serialized by the
// caller, and a crash mid-write can leave a corrupt file behind.
//
// Example usage:
//
//	existing, err := serialization.ReadFileLenient("weights.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	updated, err := serialization.Encode(existing, snapshots)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := serialization.WriteFile("weights.json", updated); err != nil {
//	    log.Fatal(err)
//	}
package serialization
