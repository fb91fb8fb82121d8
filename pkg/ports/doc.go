/*
Package ports defines the driven ports (interfaces) for the dfasim engine.

These interfaces decouple the core from where definitions come from and from the
surfaces that expose evaluation, so the engine works the same whether a
definition was read from a spreadsheet, a YAML file, redis or a bolt catalog.

# Key Interfaces

  - DefinitionLoader: produces one Definition from a source (file, table, loam, redis, bolt, memory).
  - DefinitionCatalog: stores named definitions so other processes can load them.
  - Evaluator: the read-only engine surface used by the HTTP and MCP adapters.
*/
package ports
