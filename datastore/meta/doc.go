/*
Package meta provides the static descriptors that drive record ↔ model
mapping and criterion construction: AttributeMeta for one field,
CollectionAttributeMeta for one multi-valued field, and ModelMeta for
one model type.

A model meta is assembled once from a declarative binding table and then
shared read-only:

	id, _ := meta.NewAttributeMeta("id", "ID")
	tags, _ := meta.NewCollectionAttributeMeta("tags", "Tags")

	playerMeta, err := meta.NewBuilder[Player]("game", "Player").
	    Kind("players").
	    Add(
	        meta.BindString(id,
	            func(p *Player) string { return p.ID },
	            func(p *Player, v string) { p.ID = v }),
	        meta.BindIntSet(tags,
	            func(p *Player) map[int32]struct{} { return p.Tags },
	            func(p *Player, v map[int32]struct{}) { p.Tags = v }),
	    ).
	    Build()

Attribute metas mint filter criteria bound to themselves:

	c, err := tags.Contains(datastore.Int(7))
	c.Apply(query)

Constructors fail fast on missing attribute metas or parameters; after
construction, criteria and model metas never fail except through a
codec-backed object binding.
*/
package meta
