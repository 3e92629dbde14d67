// Package manifest builds stages from declarative YAML or JSON documents.
//
// A manifest lists document metadata and a tree of nodes:
//
//	doc: Example
//	upAxis: Y
//	nodes:
//	  - kind: Xform
//	    name: root
//	    children:
//	      - kind: Mesh
//	        name: box
//	        properties:
//	          - {name: extent, type: float3, value: [[-1, -1, -1], [1, 1, 1]]}
//	          - {name: "material:binding", type: token, ref: /Material_001, rel: true}
//
// Loading runs in three steps. The document is converted to JSON and any
// RFC 6902 patches are applied to it. String leaves containing $[...] are
// then evaluated as expressions against the environment given with
// WithEnv. Finally the result is decoded into a Manifest and built.
//
// References are resolved once the whole tree exists, so a property may
// point at a node or property declared later in the document. A path that
// names nothing fails with ErrUnresolvedRef.
package manifest
